package equation

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("equation", "equation handling")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
