// Package platform wraps operating-system lookups that behave differently
// across platforms, such as locating the running executable on disk.
package platform
