package visitors

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("equation/visitors", "equation tree visitors")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
