/*
Copyright (c) 2019-2021 Andreas T Jonsson

This software is provided 'as-is', without any express or implied
warranty. In no event will the authors be held liable for any damages
arising from the use of this software.

Permission is granted to anyone to use this software for any purpose,
including commercial applications, and to alter it and redistribute it
freely, subject to the following restrictions:

1. The origin of this software must not be misrepresented; you must not
   claim that you wrote the original software. If you use this software
   in a product, an acknowledgment in the product documentation would be
   appreciated but is not required.
2. Altered source versions must be plainly marked as such, and must not be
   misrepresented as being the original software.
3. This notice may not be removed or altered from any source distribution.
*/

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		v := New(1, 2, 3)
		assert.Equal(t, "1.2.3", v.String())
		assert.Equal(t, "1.2.3", v.FullString())

		v.Build = "rc1"
		assert.Equal(t, "1.2.3-rc1", v.FullString())
	})

	t.Run("Parse", func(t *testing.T) {
		v, err := Parse("0.4.12-beta")
		require.NoError(t, err)
		assert.Equal(t, Version{0, 4, 12, "beta"}, v)

		v, err = Parse(Current.FullString())
		require.NoError(t, err)
		assert.Equal(t, Current, v)

		for _, s := range []string{"", "1.2", "1.2.3.4", "1.x.3", "1.2.300"} {
			_, err := Parse(s)
			assert.Error(t, err, s)
		}
	})
}
