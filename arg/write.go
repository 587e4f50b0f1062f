package arg

import (
	"github.com/tinywasm/fmtcore/coretype"
	"github.com/tinywasm/fmtcore/fmtspec"
	"github.com/tinywasm/fmtcore/result"
	"github.com/tinywasm/fmtcore/writer"
)

func writeValue(w *writer.Writer, spec fmtspec.Spec, value any) result.Result[result.Void] {
	switch v := value.(type) {
	case int:
		return coretype.WriteInteger(w, spec, v)
	case int8:
		return coretype.WriteInteger(w, spec, v)
	case int16:
		return coretype.WriteInteger(w, spec, v)
	case int32:
		return coretype.WriteInteger(w, spec, v)
	case int64:
		return coretype.WriteInteger(w, spec, v)
	case uint:
		return coretype.WriteInteger(w, spec, v)
	case uint8:
		return coretype.WriteInteger(w, spec, v)
	case uint16:
		return coretype.WriteInteger(w, spec, v)
	case uint32:
		return coretype.WriteInteger(w, spec, v)
	case uint64:
		return coretype.WriteInteger(w, spec, v)
	case bool:
		return coretype.WriteBool(w, spec, v)
	case Char:
		return coretype.WriteChar(w, spec, byte(v))
	case string:
		return coretype.WriteString(w, spec, v)
	case float32:
		return coretype.WriteFloat(w, spec, float64(v))
	case float64:
		return coretype.WriteFloat(w, spec, v)
	case Pointer:
		return coretype.WritePointer(w, spec, uintptr(v))
	default:
		return result.Err[result.Void](result.InvalidFormat)
	}
}
