package handler

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/marsestates/brokerage-api/internal/modules/serializer"
	"github.com/marsestates/brokerage-api/internal/pkg/types"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		serializer.RegisterWireNames(v)
		v.RegisterCustomTypeFunc(flexIntValue, types.FlexInt{})
	}
}

// flexIntValue exposes FlexInt to the validator as *int, nil when the
// input was blank. `required` then rejects a bound-but-blank field
// while still accepting an explicit 0.
func flexIntValue(field reflect.Value) interface{} {
	if n, ok := field.Interface().(types.FlexInt); ok && n.Valid() {
		v := n.Int()
		return &v
	}
	return nil
}
