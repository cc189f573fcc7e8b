package document

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("equation/document", "equation documents")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
