// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resp3_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/resp3"
)

func decoderFor(t *testing.T, input string) *resp3.Decoder {
	t.Helper()
	d, _, err := resp3.DecodeFromSlice([]byte(input))
	require.NoError(t, err)
	return d
}

func TestDecodeBool(t *testing.T) {
	v, err := decoderFor(t, "#t\r\n").DecodeBool()
	require.NoError(t, err)
	assert.True(t, v)

	v, err = decoderFor(t, "#f\r\n").DecodeBool()
	require.NoError(t, err)
	assert.False(t, v)
}

func TestDecodeInt64(t *testing.T) {
	v, err := decoderFor(t, ":12345\r\n").DecodeInt64()
	require.NoError(t, err)
	assert.EqualValues(t, 12345, v)

	v, err = decoderFor(t, ":-12345\r\n").DecodeInt64()
	require.NoError(t, err)
	assert.EqualValues(t, -12345, v)
}

func TestDecodeUint64RejectsSign(t *testing.T) {
	_, err := decoderFor(t, ":-1\r\n").DecodeUint64()
	assert.Error(t, err)
}

func TestDecodeFloat64(t *testing.T) {
	v, err := decoderFor(t, ",1.23\r\n").DecodeFloat64()
	require.NoError(t, err)
	assert.Equal(t, 1.23, v)

	v, err = decoderFor(t, ",inf\r\n").DecodeFloat64()
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = decoderFor(t, ",-inf\r\n").DecodeFloat64()
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))
}

func TestDecodeStringVariants(t *testing.T) {
	v, err := decoderFor(t, "+hello world\r\n").DecodeString()
	require.NoError(t, err)
	assert.Equal(t, "hello world", v)

	v, err = decoderFor(t, "$11\r\nhello world\r\n").DecodeString()
	require.NoError(t, err)
	assert.Equal(t, "hello world", v)

	v, err = decoderFor(t, "-ERR hello world\r\n").DecodeString()
	require.NoError(t, err)
	assert.Equal(t, "ERR hello world", v)

	v, err = decoderFor(t, "!15\r\nERR hello world\r\n").DecodeString()
	require.NoError(t, err)
	assert.Equal(t, "ERR hello world", v)
}

func TestDecodeStringRefZeroCopy(t *testing.T) {
	buf := []byte("$11\r\nhello world\r\n")
	d, _, err := resp3.DecodeFromSlice(buf)
	require.NoError(t, err)
	ref, err := d.DecodeStringRef()
	require.NoError(t, err)
	assert.Equal(t, resp3.Borrowed, ref.Kind)
	assert.Equal(t, "hello world", ref.String())
}

func TestDecodeOption(t *testing.T) {
	isNone, err := decoderFor(t, "_\r\n").DecodeOption()
	require.NoError(t, err)
	assert.True(t, isNone)

	isNone, err = decoderFor(t, ":5\r\n").DecodeOption()
	require.NoError(t, err)
	assert.False(t, isNone)
}

func TestBeginSeq(t *testing.T) {
	d := decoderFor(t, "*3\r\n:1\r\n:2\r\n:3\r\n")
	n, err := d.BeginSeq()
	require.NoError(t, err)
	require.Equal(t, 3, n)

	got := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		v, err := d.DecodeInt64()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int64{1, 2, 3}, got)
}

func TestBeginMap(t *testing.T) {
	d := decoderFor(t, "%2\r\n+first\r\n:1\r\n+second\r\n:2\r\n")
	n, err := d.BeginMap()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	kv := map[string]int64{}
	for i := 0; i < n; i++ {
		k, err := d.DecodeString()
		require.NoError(t, err)
		v, err := d.DecodeInt64()
		require.NoError(t, err)
		kv[k] = v
	}
	assert.Equal(t, map[string]int64{"first": 1, "second": 2}, kv)
}

func TestAttributeIsSkippedByDefault(t *testing.T) {
	d := decoderFor(t, "|1\r\n+hello\r\n+world\r\n#t\r\n")
	v, err := d.DecodeBool()
	require.NoError(t, err)
	assert.True(t, v)
}

func TestAttributeSkipOverComplexValue(t *testing.T) {
	input := "|1\r\n+key-popularity\r\n%2\r\n$1\r\na\r\n,0.1923\r\n$1\r\nb\r\n,0.0012\r\n*2\r\n:2039123\r\n:9543892\r\n"
	d := decoderFor(t, input)
	n, err := d.BeginSeq()
	require.NoError(t, err)
	require.Equal(t, 2, n)
	a, err := d.DecodeInt64()
	require.NoError(t, err)
	b, err := d.DecodeInt64()
	require.NoError(t, err)
	assert.EqualValues(t, 2039123, a)
	assert.EqualValues(t, 9543892, b)
}

func TestDecodeWithAttributeCaptures(t *testing.T) {
	input := "|1\r\n+key-popularity\r\n%2\r\n$1\r\na\r\n,0.1923\r\n$1\r\nb\r\n,0.0012\r\n*2\r\n:2039123\r\n:9543892\r\n"
	d := decoderFor(t, input)

	type keyPop struct{ a, b float64 }
	decodeAttr := func(d *resp3.Decoder) (keyPop, error) {
		n, err := d.BeginMap()
		if err != nil {
			return keyPop{}, err
		}
		require.Equal(t, 1, n)
		name, err := d.DecodeString()
		require.NoError(t, err)
		assert.Equal(t, "key-popularity", name)

		fn, err := d.BeginMap()
		if err != nil {
			return keyPop{}, err
		}
		require.Equal(t, 2, fn)
		var kp keyPop
		for i := 0; i < fn; i++ {
			k, err := d.DecodeString()
			if err != nil {
				return keyPop{}, err
			}
			v, err := d.DecodeFloat64()
			if err != nil {
				return keyPop{}, err
			}
			switch k {
			case "a":
				kp.a = v
			case "b":
				kp.b = v
			}
		}
		return kp, nil
	}
	decodeValue := func(d *resp3.Decoder) ([2]int64, error) {
		n, err := d.BeginSeq()
		if err != nil {
			return [2]int64{}, err
		}
		require.Equal(t, 2, n)
		x, err := d.DecodeInt64()
		if err != nil {
			return [2]int64{}, err
		}
		y, err := d.DecodeInt64()
		if err != nil {
			return [2]int64{}, err
		}
		return [2]int64{x, y}, nil
	}

	wa, err := resp3.DecodeWithAttribute(d, decodeAttr, decodeValue)
	require.NoError(t, err)
	attr, val := wa.IntoInner()
	assert.Equal(t, 0.1923, attr.a)
	assert.Equal(t, 0.0012, attr.b)
	assert.Equal(t, [2]int64{2039123, 9543892}, val)
}

func TestDecodeVariant(t *testing.T) {
	d := decoderFor(t, "%1\r\n+circle\r\n:5\r\n")
	name, err := d.DecodeVariant()
	require.NoError(t, err)
	assert.Equal(t, "circle", name)
	radius, err := d.DecodeInt64()
	require.NoError(t, err)
	assert.EqualValues(t, 5, radius)
}

func TestDecodeIgnoredSkipsNestedAggregate(t *testing.T) {
	d := decoderFor(t, "*2\r\n*2\r\n:1\r\n:2\r\n:3\r\n")
	n, err := d.BeginSeq()
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.NoError(t, d.DecodeIgnored())
	v, err := d.DecodeInt64()
	require.NoError(t, err)
	assert.EqualValues(t, 3, v)
}

func TestDecodeInvalidUTF8(t *testing.T) {
	d := decoderFor(t, "$3\r\n\xff\xfe\xfd\r\n")
	_, err := d.DecodeString()
	assert.Error(t, err)
}
