// compileinfoprint is imported by every command for the side effect of logging
// the compileinfo to os.Stderr on startup.
package compileinfoprint

import "github.com/carbocation/pikavirus/compileinfo"

func init() {
	compileinfo.Log()
}
