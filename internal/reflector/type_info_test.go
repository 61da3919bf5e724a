package reflector

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type testStruct struct{ Name string }

func TestTypeInfoForType_unwrapsPointer(t *testing.T) {
	ti := TypeInfoForType(reflect.TypeFor[*testStruct]())
	require.NotEqual(t, reflect.Pointer, ti.Type.Kind())
}

func TestTypeInfoForType_nil(t *testing.T) {
	ti := TypeInfoForType(nil)
	require.Equal(t, "<nil>", ti.Name)
}

func TestSignature_joinsNames(t *testing.T) {
	sig := Signature(reflect.TypeFor[int](), reflect.TypeFor[string]())
	require.Equal(t, "int,string", sig)
}

func TestSignature_empty(t *testing.T) {
	require.Equal(t, "", Signature())
}
