// Package trajectory implements spec.md §9's merged Trajectory/Traj pair:
// a crisp (non-interval), time-indexed value used as ground truth or an
// observation feed into the sliced tube system, as opposed to tube's
// interval-enclosed reachable sets.
package trajectory
