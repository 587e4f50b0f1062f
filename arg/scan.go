package arg

import (
	"github.com/tinywasm/fmtcore/coretype"
	"github.com/tinywasm/fmtcore/fmtspec"
	"github.com/tinywasm/fmtcore/reader"
	"github.com/tinywasm/fmtcore/result"
)

func scanValue(input *reader.Reader, spec fmtspec.Spec, ptr any) result.Result[result.Void] {
	switch p := ptr.(type) {
	case *int:
		return storeScan(coretype.ScanInteger[int](input, spec), p)
	case *int8:
		return storeScan(coretype.ScanInteger[int8](input, spec), p)
	case *int16:
		return storeScan(coretype.ScanInteger[int16](input, spec), p)
	case *int32:
		return storeScan(coretype.ScanInteger[int32](input, spec), p)
	case *int64:
		return storeScan(coretype.ScanInteger[int64](input, spec), p)
	case *uint:
		return storeScan(coretype.ScanInteger[uint](input, spec), p)
	case *uint8:
		return storeScan(coretype.ScanInteger[uint8](input, spec), p)
	case *uint16:
		return storeScan(coretype.ScanInteger[uint16](input, spec), p)
	case *uint32:
		return storeScan(coretype.ScanInteger[uint32](input, spec), p)
	case *uint64:
		return storeScan(coretype.ScanInteger[uint64](input, spec), p)
	case *bool:
		return storeScan(coretype.ScanBool(input, spec), p)
	case *Char:
		v := coretype.ScanChar(input, spec)
		if v.HasError() {
			return result.Err[result.Void](v.Error())
		}
		*p = Char(v.Value())
		return result.Ok(result.Success)
	case *string:
		return storeScan(coretype.ScanString(input, spec), p)
	case *float32:
		v := coretype.ScanFloat(input, spec)
		if v.HasError() {
			return result.Err[result.Void](v.Error())
		}
		*p = float32(v.Value())
		return result.Ok(result.Success)
	case *float64:
		return storeScan(coretype.ScanFloat(input, spec), p)
	default:
		return result.Err[result.Void](result.InvalidFormat)
	}
}

func storeScan[T any](r result.Result[T], out *T) result.Result[result.Void] {
	if r.HasError() {
		return result.Err[result.Void](r.Error())
	}
	*out = r.Value()
	return result.Ok(result.Success)
}
