// Package hal defines the hardware abstraction consumed by the firmware
// packages. Implementations exist for simulated boards (pkg/hal/simboard);
// the firmware itself never touches peripheral registers directly so the
// bucket/display logic stays testable on a host.
package hal
