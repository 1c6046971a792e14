package controller

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wmsdemo/wms/internal/adapter/search"
)

func WithTestIndex(t *testing.T, fn func(si *search.Index)) {
	si, err := search.NewIndex("test")
	require.NoError(t, err)
	defer si.Close()
	fn(si)
}
