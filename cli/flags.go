package cli

import (
	"fmt"
	"reflect"
	"strings"
)

// parseFlags walks opts' struct tags ("long"/"short") and consumes flags from
// args, collecting everything else (the selector and optional file
// positional arguments) into the returned rest slice. This tool's flags
// struct (cli.go) is bool-only, so this is trimmed down from the teacher's
// general string/slice/map/positional-aware flag parser to the subset that
// surface actually exercises: long names, short names, short-flag
// clustering ("-pd"), "--" to stop flag parsing, and "unknown flag" /
// "boolean flag cannot have an argument" errors.
func parseFlags(args []string, opts interface{}) ([]string, error) {
	rest := make([]string, 0, len(args))
	optsVal := reflect.ValueOf(opts).Elem()
	typ := optsVal.Type()
	longToValue := map[string]reflect.Value{}
	shortToValue := map[string]reflect.Value{}
	for i, l := 0, optsVal.NumField(); i < l; i++ {
		if flag, ok := typ.Field(i).Tag.Lookup("long"); ok {
			longToValue[flag] = optsVal.Field(i)
		}
		if flag, ok := typ.Field(i).Tag.Lookup("short"); ok {
			shortToValue[flag] = optsVal.Field(i)
		}
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			rest = append(rest, args[i+1:]...)
			return rest, nil
		case strings.HasPrefix(arg, "--"):
			name := arg[2:]
			if j := strings.IndexByte(name, '='); j >= 0 {
				return nil, fmt.Errorf("boolean flag `--%s' cannot have an argument", name[:j])
			}
			val, ok := longToValue[name]
			if !ok {
				return nil, fmt.Errorf("unknown flag `%s'", arg)
			}
			val.SetBool(true)
		case arg > "-" && arg[0] == '-':
			if !isShortFlagCluster(arg[1:], shortToValue) {
				rest = append(rest, arg)
				continue
			}
			for j := 1; j < len(arg); j++ {
				opt := arg[j : j+1]
				val, ok := shortToValue[opt]
				if !ok {
					return nil, fmt.Errorf("unknown flag `%s'", opt)
				}
				val.SetBool(true)
			}
		default:
			rest = append(rest, arg)
		}
	}
	return rest, nil
}

// isShortFlagCluster reports whether s looks like a run of recognized
// single-character bool flags (e.g. "pd" in "-pd") rather than something
// else that happens to start with '-', such as a negative number passed as
// the selector or file positional argument.
func isShortFlagCluster(s string, shortToValue map[string]reflect.Value) bool {
	for j := range s {
		opt := s[j : j+1]
		if _, ok := shortToValue[opt]; ok {
			continue
		}
		return opt >= "A" && opt <= "Z" || opt >= "a" && opt <= "z"
	}
	return true
}

func formatFlags(opts interface{}) string {
	val := reflect.ValueOf(opts).Elem()
	typ := val.Type()
	var sb strings.Builder
	sb.WriteString("Command Options:\n")
	for i, l := 0, typ.NumField(); i < l; i++ {
		tag := typ.Field(i).Tag
		if i == l-1 {
			sb.WriteString("\nHelp Option:\n")
		}
		sb.WriteString("  ")
		var short bool
		if flag, ok := tag.Lookup("short"); ok {
			sb.WriteString("-")
			sb.WriteString(flag)
			short = true
		} else {
			sb.WriteString("  ")
		}
		m := sb.Len()
		if flag, ok := tag.Lookup("long"); ok {
			if short {
				sb.WriteString(", ")
			} else {
				sb.WriteString("  ")
			}
			sb.WriteString("--")
			sb.WriteString(flag)
			sb.WriteString(" ") // every flag in this tool's surface is bool
		} else {
			sb.WriteString("=")
		}
		sb.WriteString("                       "[:24-sb.Len()+m])
		sb.WriteString(tag.Get("description"))
		sb.WriteString("\n")
	}
	return sb.String()
}
