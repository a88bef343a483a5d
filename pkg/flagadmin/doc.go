// Package flagadmin exposes a feature flag registry over an HTTP admin
// API for dashboards and rollout tooling. Mount it behind authenticated
// admin routes; it performs no access control of its own.
package flagadmin
