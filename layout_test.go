package printplate

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestLoadLayout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "classic.json", testLayoutJSON)

	l, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if l.Name != "classic" {
		t.Errorf("Name = %q, want %q", l.Name, "classic")
	}
	if l.Title != "Classic Frame" {
		t.Errorf("Title = %q, want %q", l.Title, "Classic Frame")
	}
	if l.PaperSize.Width != 8.5 || l.PaperSize.Height != 11 {
		t.Errorf("PaperSize = %+v, want 8.5x11", l.PaperSize)
	}
	if !l.Back.NotePos.Centered {
		t.Error("note_pos \"centered\" not parsed")
	}
}

func TestLoadLayout_NameDefaultsFromFilename(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "gallery_wide.json", `{
  "paper_size": {"width": 11, "height": 14},
  "front": {
    "img_dims": {"width": 8, "height": 6},
    "img_pos": {"top": 1.5},
    "caption_dims": {"width": 8, "height": 2},
    "caption_pos": {"top": 9}
  },
  "back": {}
}`)

	l, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if l.Name != "gallery_wide" {
		t.Errorf("Name = %q, want %q", l.Name, "gallery_wide")
	}
	if l.Title != "gallery_wide" {
		t.Errorf("Title = %q, want name fallback", l.Title)
	}
}

func TestLoadLayout_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "malformed JSON",
			content: `{"paper_size": `,
			wantErr: ErrInvalidLayout,
		},
		{
			name:    "unknown field rejected",
			content: `{"paper_size": {"width": 8.5, "height": 11}, "sides": 2}`,
			wantErr: ErrInvalidLayout,
		},
		{
			name: "zero paper size",
			content: `{
  "paper_size": {"width": 0, "height": 11},
  "front": {"img_dims": {"width": 1, "height": 1}, "caption_dims": {"width": 1, "height": 1}},
  "back": {}
}`,
			wantErr: ErrInvalidLayout,
		},
		{
			name: "gutter without special mode",
			content: `{
  "paper_size": {"width": 8.5, "height": 11},
  "front": {
    "img_dims": {"width": 6, "height": 4},
    "caption_dims": {"width": 6, "height": 2},
    "gutter": 0.5
  },
  "back": {}
}`,
			wantErr: ErrInvalidLayout,
		},
		{
			name: "double_col without gutter",
			content: `{
  "paper_size": {"width": 8.5, "height": 11},
  "front": {
    "img_dims": {"width": 6, "height": 4},
    "caption_dims": {"width": 6, "height": 2},
    "special": "double_col"
  },
  "back": {}
}`,
			wantErr: ErrInvalidLayout,
		},
		{
			name: "unknown special mode",
			content: `{
  "paper_size": {"width": 8.5, "height": 11},
  "front": {
    "img_dims": {"width": 6, "height": 4},
    "caption_dims": {"width": 6, "height": 2},
    "special": "triple_col",
    "gutter": 0.5
  },
  "back": {}
}`,
			wantErr: ErrInvalidLayout,
		},
		{
			name: "negative border width",
			content: `{
  "paper_size": {"width": 8.5, "height": 11},
  "front": {
    "img_dims": {"width": 6, "height": 4},
    "caption_dims": {"width": 6, "height": 2},
    "border_widths": {"img": -0.1}
  },
  "back": {}
}`,
			wantErr: ErrInvalidLayout,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			path := writeTestFile(t, dir, "bad.json", tt.content)
			if _, err := LoadLayout(path); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadLayout_Missing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.json")
	if _, err := LoadLayout(path); !errors.Is(err, ErrLayoutNotFound) {
		t.Errorf("error = %v, want ErrLayoutNotFound", err)
	}
}

func TestBackNoteDims(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		paper Dimensions
		dims  *Dimensions
		want  Dimensions
	}{
		{
			name:  "letter paper defaults to 6x9",
			paper: Dimensions{Width: 8.5, Height: 11},
			want:  Dimensions{Width: 6, Height: 9},
		},
		{
			name:  "wide paper defaults to 7x10",
			paper: Dimensions{Width: 11, Height: 14},
			want:  Dimensions{Width: 7, Height: 10},
		},
		{
			name:  "declared dims win",
			paper: Dimensions{Width: 8.5, Height: 11},
			dims:  &Dimensions{Width: 5, Height: 8},
			want:  Dimensions{Width: 5, Height: 8},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := testLayout()
			l.PaperSize = tt.paper
			l.Back.NoteDims = tt.dims
			if got := l.BackNoteDims(); got != tt.want {
				t.Errorf("BackNoteDims() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLayoutTextStyles(t *testing.T) {
	t.Parallel()

	l := testLayout()
	if got := l.FrontTextStyle(); got != DefaultTextStyle() {
		t.Errorf("FrontTextStyle() = %+v, want defaults", got)
	}

	l.Front.TextStyle = &TextStyle{AlignH: AlignCenter, Size: 14}
	got := l.FrontTextStyle()
	if got.AlignH != AlignCenter || got.Size != 14 {
		t.Errorf("declared fields lost: %+v", got)
	}
	if got.Font != DefaultFont || got.AlignV != AlignTop {
		t.Errorf("unset fields not defaulted: %+v", got)
	}
}
