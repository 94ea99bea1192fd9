// Package platform contains OS integration and external tool glue:
// the tool probe, video file scanning, filesystem helpers, and revealing
// files in the OS file manager.
package platform
