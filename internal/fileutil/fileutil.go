// Package fileutil holds the permission modes used for generated output.
package fileutil

import "os"

// DirMode is the permission mode for output directories created by the
// generator.
const DirMode os.FileMode = 0o755

// ReadableByAll is the file permission mode for generated source code
// files intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644
