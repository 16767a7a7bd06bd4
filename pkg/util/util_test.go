package util

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateTpl(t *testing.T) {
	ts := time.Date(2023, 11, 10, 14, 30, 45, 0, time.UTC).UnixMilli()

	tests := []struct {
		tpl    string
		layout string
	}{
		{"YYYY.MM.DD", "2006.01.02"},
		{"DD/MM/YYYY", "02/01/2006"},
		{"YYYY-MM-DD hh:mm:ss", "2006-01-02 15:04:05"},
		{"YY-MM", "06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.tpl, func(t *testing.T) {
			expected := time.UnixMilli(ts).Format(tt.layout)
			assert.Equal(t, expected, FormatDateTpl(ts, tt.tpl))
		})
	}
}

func TestFormatDateTplZero(t *testing.T) {
	assert.Equal(t, "", FormatDateTpl(0, "YYYY"))
}

func TestParallelRunsAllInputs(t *testing.T) {
	var count int64
	inputs := []int{1, 2, 3, 4, 5, 6, 7, 8}

	err := Parallel(inputs, 3, func(ctx context.Context, n int) error {
		atomic.AddInt64(&count, int64(n))
		return nil
	})

	require.NoError(t, err)
	assert.EqualValues(t, 36, count)
}

func TestParallelStopsOnError(t *testing.T) {
	boom := errors.New("boom")

	err := Parallel([]int{1, 2, 3}, 1, func(ctx context.Context, n int) error {
		if n == 2 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
}

func TestParallelEmptyInput(t *testing.T) {
	assert.NoError(t, Parallel(nil, 4, func(ctx context.Context, n int) error {
		t.Fatal("must not be called")
		return nil
	}))
}
