package calendar

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapping_SetKeepsInsertionOrder(t *testing.T) {
	m := NewMapping()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestMapping_SetOverwritesInPlace(t *testing.T) {
	m := NewMapping()
	m.Set("first", 1)
	m.Set("second", 2)
	m.Set("first", 10)

	assert.Equal(t, []string{"first", "second"}, m.Keys())
	got, ok := m.Get("first")
	require.True(t, ok)
	assert.Equal(t, 10, got)
}

func TestMapping_GetMissingKey(t *testing.T) {
	m := NewMapping()
	m.Set("present", true)

	_, ok := m.Get("missing")
	assert.False(t, ok)
	assert.False(t, m.Has("missing"))
	assert.True(t, m.Has("present"))
}

func TestMapping_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		build func(m *Mapping)
		want  string
	}{
		{
			name:  "empty mapping",
			build: func(m *Mapping) {},
			want:  `{}`,
		},
		{
			name: "entries keep insertion order instead of sorting",
			build: func(m *Mapping) {
				m.Set("zulu", 1)
				m.Set("alpha", "two")
				m.Set("mike", []int{3})
			},
			want: `{"zulu":1,"alpha":"two","mike":[3]}`,
		},
		{
			name: "nested values encode recursively",
			build: func(m *Mapping) {
				m.Set("outer", map[string]any{"inner": true})
			},
			want: `{"outer":{"inner":true}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMapping()
			tt.build(m)
			data, err := json.Marshal(m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestMapping_MarshalJSONPropagatesEncodingErrors(t *testing.T) {
	m := NewMapping()
	m.Set("ok", 1)
	m.Set("bad", make(chan int))

	_, err := json.Marshal(m)
	assert.Error(t, err)
}
