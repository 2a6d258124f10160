package jpick

import (
	"testing"

	json "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/stretchr/testify/require"
)

func unmarshal(t *testing.T, src string) any {
	t.Helper()
	var out any
	err := json.Unmarshal([]byte(src), &out,
		json.WithUnmarshalers(Unmarshalers()),
		jsontext.AllowDuplicateNames(true))
	require.NoError(t, err)
	return out
}

func assertD(t *testing.T, v any) D {
	t.Helper()
	d, ok := v.(D)
	require.True(t, ok, "expected D, got %T", v)
	return d
}

func assertA(t *testing.T, v any) A {
	t.Helper()
	a, ok := v.(A)
	require.True(t, ok, "expected A, got %T", v)
	return a
}

func TestUnmarshalers(t *testing.T) {
	t.Run("empty object -> empty D", func(t *testing.T) {
		d := assertD(t, unmarshal(t, `{}`))
		require.Len(t, d, 0)
		require.NotNil(t, d)
	})

	t.Run("empty array -> empty A", func(t *testing.T) {
		a := assertA(t, unmarshal(t, `[]`))
		require.Len(t, a, 0)
		require.NotNil(t, a)
	})

	t.Run("object ordering preserved", func(t *testing.T) {
		d := assertD(t, unmarshal(t, `{"b":2,"a":1}`))
		require.Equal(t, []E{{Key: "b", Value: float64(2)}, {Key: "a", Value: float64(1)}}, []E(d))
	})

	t.Run("duplicate keys preserved as duplicate entries", func(t *testing.T) {
		d := assertD(t, unmarshal(t, `{"a":1,"a":2}`))
		require.Equal(t, []E{{Key: "a", Value: float64(1)}, {Key: "a", Value: float64(2)}}, []E(d))
	})

	t.Run("nested array wraps objects", func(t *testing.T) {
		a := assertA(t, unmarshal(t, `[1,{"x":2}]`))
		require.Len(t, a, 2)
		require.Equal(t, float64(1), a[0])
		d := assertD(t, a[1])
		require.Equal(t, "x", d[0].Key)
	})

	t.Run("nested object values decode recursively", func(t *testing.T) {
		d := assertD(t, unmarshal(t, `{"outer":{"inner":[true,null]}}`))
		require.Len(t, d, 1)
		inner := assertD(t, d[0].Value)
		arr := assertA(t, inner[0].Value)
		require.Equal(t, true, arr[0])
		require.Nil(t, arr[1])
	})

	t.Run("primitive value bypassed (SkipFunc)", func(t *testing.T) {
		require.Equal(t, float64(123), unmarshal(t, `123`))
		require.Equal(t, "text", unmarshal(t, `"text"`))
		require.Equal(t, true, unmarshal(t, `true`))
		require.Nil(t, unmarshal(t, `null`))
	})
}

func TestUnmarshalDocument(t *testing.T) {
	t.Run("empty object -> *D empty", func(t *testing.T) {
		var d D
		err := json.Unmarshal([]byte(`{}`), &d, json.WithUnmarshalers(unmarshalDocument()))
		require.NoError(t, err)
		require.Len(t, d, 0)
	})

	t.Run("ordering preserved when target is *D", func(t *testing.T) {
		var d D
		err := json.Unmarshal([]byte(`{"z":1,"a":2}`), &d, json.WithUnmarshalers(Unmarshalers()))
		require.NoError(t, err)
		require.Equal(t, []E{{Key: "z", Value: float64(1)}, {Key: "a", Value: float64(2)}}, []E(d))
	})
}

func TestUnmarshalCollection(t *testing.T) {
	t.Run("empty array -> *A empty", func(t *testing.T) {
		var a A
		err := json.Unmarshal([]byte(`[]`), &a, json.WithUnmarshalers(unmarshalCollection()))
		require.NoError(t, err)
		require.Len(t, a, 0)
	})

	t.Run("array with object element -> element decoded as D", func(t *testing.T) {
		var a A
		err := json.Unmarshal([]byte(`[{"a":1}]`), &a, json.WithUnmarshalers(Unmarshalers()))
		require.NoError(t, err)
		require.Len(t, a, 1)
		d := assertD(t, a[0])
		require.Equal(t, []E{{Key: "a", Value: float64(1)}}, []E(d))
	})
}
