package shape

import (
	"reflect"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		dims     []int64
		expected Shape
	}{
		{
			name:     "empty shape",
			dims:     []int64{},
			expected: Shape{},
		},
		{
			name:     "no dims",
			dims:     nil,
			expected: Shape{},
		},
		{
			name:     "1D shape",
			dims:     []int64{10},
			expected: Shape{10},
		},
		{
			name:     "3D shape",
			dims:     []int64{2, 3, 4},
			expected: Shape{2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.dims...)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("New() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewCopiesDims(t *testing.T) {
	dims := []int64{2, 3}
	s := New(dims...)
	dims[0] = 9
	if s[0] != 2 {
		t.Fatalf("expected shape to be independent of caller slice, got %v", s)
	}
}

func TestShapeCloneAndEqual(t *testing.T) {
	original := Shape{3, 1, 1}
	clone := original.Clone()
	if !clone.Equal(original) {
		t.Fatalf("clone %v does not equal original %v", clone, original)
	}

	clone[0] = 4
	if original[0] != 3 {
		t.Fatalf("clone shares backing array with original")
	}
	if clone.Equal(original) {
		t.Fatalf("expected modified clone to differ from original")
	}

	var nilShape Shape
	if got := nilShape.Clone(); got == nil || len(got) != 0 {
		t.Fatalf("expected nil shape to clone to an empty non-nil shape, got %#v", got)
	}
	if !nilShape.Equal(Shape{}) {
		t.Fatalf("expected nil shape to equal empty shape")
	}
	if (Shape{1, 2}).Equal(Shape{1}) {
		t.Fatalf("expected shapes of different rank to differ")
	}
}

func TestShapeString(t *testing.T) {
	tests := []struct {
		shape Shape
		want  string
	}{
		{shape: Shape{}, want: "scalar"},
		{shape: Shape{3}, want: "3"},
		{shape: Shape{3, 1, 0}, want: "3x1x0"},
	}

	for _, tt := range tests {
		if got := tt.shape.String(); got != tt.want {
			t.Errorf("Shape(%v).String() = %q, want %q", []int64(tt.shape), got, tt.want)
		}
		if got := tt.shape.Rank(); got != len(tt.shape) {
			t.Errorf("Shape(%v).Rank() = %d, want %d", []int64(tt.shape), got, len(tt.shape))
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Shape
		wantErr string
	}{
		{
			name: "standard",
			raw:  "3,3",
			want: Shape{3, 3},
		},
		{
			name: "trim spaces",
			raw:  " 2, 3 ,4 ",
			want: Shape{2, 3, 4},
		},
		{
			name: "zero dimension",
			raw:  "1,0",
			want: Shape{1, 0},
		},
		{
			name:    "empty dimension",
			raw:     "1,,3",
			wantErr: "empty dimension",
		},
		{
			name:    "negative dimension",
			raw:     "1,-1,3",
			wantErr: "negative dimension",
		},
		{
			name:    "invalid integer",
			raw:     "1,a,3",
			wantErr: "failed to parse dimension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("unexpected shape: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElementCount(t *testing.T) {
	maxInt := int64(^uint(0) >> 1)

	tests := []struct {
		name      string
		shape     Shape
		wantCount int
		wantErr   string
	}{
		{
			name:      "scalar shape",
			shape:     Shape{},
			wantCount: 1,
		},
		{
			name:      "standard",
			shape:     Shape{2, 3, 4},
			wantCount: 24,
		},
		{
			name:      "zero dimension",
			shape:     Shape{5, 0, 7},
			wantCount: 0,
		},
		{
			name:      "zero dimension hides overflow",
			shape:     Shape{0, maxInt, maxInt},
			wantCount: 0,
		},
		{
			name:    "negative dimension",
			shape:   Shape{2, -1},
			wantErr: "must be >= 0",
		},
		{
			name:    "overflow",
			shape:   Shape{maxInt, 2},
			wantErr: "exceeds maximum supported element count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ElementCount(tt.shape)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.wantCount {
				t.Fatalf("unexpected count: got %d, want %d", got, tt.wantCount)
			}
		})
	}
}
