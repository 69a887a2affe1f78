package stream

import (
	"context"
	"net"
	"sync"

	"github.com/golang/glog"

	"github.com/sensorlink/seglink.go/pkg/device/comm"
	fx "github.com/sensorlink/seglink.go/pkg/framework"
)

// Server accepts TCP connections and registers the device over each of
// them. Events are broadcast to every connected peer.
type Server struct {
	Addr string

	listener  net.Listener
	connsLock sync.Mutex
	conns     map[*serverConn]struct{}
}

type serverConn struct {
	reg  comm.Registrar
	conn net.Conn
}

// NewServer creates a Server listening on addr.
func NewServer(addr string) *Server {
	return &Server{Addr: addr, conns: make(map[*serverConn]struct{})}
}

// Listen starts listening. It must be called before Run so bind errors
// surface during setup rather than inside the loop.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.listener = ln
	return nil
}

// ListenAddr returns the bound address, for tests using port 0.
func (s *Server) ListenAddr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// SendEvent implements Registrar.
func (s *Server) SendEvent(ctx context.Context, msg fx.Message) error {
	s.connsLock.Lock()
	peers := make([]*serverConn, 0, len(s.conns))
	for peer := range s.conns {
		peers = append(peers, peer)
	}
	s.connsLock.Unlock()
	var errs fx.AggregatedError
	for _, peer := range peers {
		errs.Add(peer.reg.SendEvent(ctx, msg))
	}
	return errs.Aggregate()
}

// AddToLoop implements LoopAdder.
func (s *Server) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(s)
}

// Run implements Runnable: it accepts connections until ctx is done.
// The ctx carries the loop control, so per-connection pipes can post
// received commands as loop messages.
func (s *Server) Run(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	go func() {
		<-ctx.Done()
		s.listener.Close()
		s.closeAll()
	}()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return err
		}
		glog.V(1).Infof("stream: peer %s connected", conn.RemoteAddr())
		go s.serveConn(ctx, conn)
	}
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	peer := &serverConn{conn: conn}
	peer.reg.Init(New(conn))
	s.connsLock.Lock()
	s.conns[peer] = struct{}{}
	s.connsLock.Unlock()
	defer func() {
		s.connsLock.Lock()
		delete(s.conns, peer)
		s.connsLock.Unlock()
		conn.Close()
		glog.V(1).Infof("stream: peer %s disconnected", conn.RemoteAddr())
	}()
	if err := peer.reg.Run(ctx); err != nil && err != context.Canceled {
		glog.V(1).Infof("stream: peer %s: %v", conn.RemoteAddr(), err)
	}
}

func (s *Server) closeAll() {
	s.connsLock.Lock()
	defer s.connsLock.Unlock()
	for peer := range s.conns {
		peer.conn.Close()
	}
}
