package assert

import "github.com/oomph-ac/wedisplay/oerror"

// IsTrue panics with a WedisplayError if ok is false.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
