package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/dynbind/symtab"
)

// parseArg converts user input to a value Symbol.Call accepts for k.
// Integers take any base strconv understands (0x, 0o, 0b).
func parseArg(k symtab.Kind, s string) (any, error) {
	s = strings.TrimSpace(s)
	switch {
	case k.IsFloat():
		return strconv.ParseFloat(s, 64)
	case k == symtab.U8 && (s == "true" || s == "false"):
		return s == "true", nil
	case k.IsSigned():
		return strconv.ParseInt(s, 0, 64)
	case k.Valid() && k != symtab.Void:
		return strconv.ParseUint(s, 0, 64)
	}
	return nil, fmt.Errorf("cannot parse %q as %s", s, k)
}

func formatResult(k symtab.Kind, v any) string {
	switch {
	case k == symtab.Void:
		return "(void)"
	case k == symtab.Ptr:
		p, _ := v.(uintptr)
		return fmt.Sprintf("%#x", p)
	}
	return fmt.Sprintf("%v", v)
}
