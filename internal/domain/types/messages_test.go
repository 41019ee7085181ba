package types

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelope_HasNoSerialisationTags(t *testing.T) {
	typ := reflect.TypeOf(Envelope{})
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		assert.Empty(t, f.Tag, "field %s", f.Name)
	}
}

func TestEntry_Failed(t *testing.T) {
	assert.False(t, Entry{From: "Alice", Text: "hi"}.Failed())
	assert.True(t, Entry{From: "Alice", Err: errors.New("bad tag")}.Failed())
}
