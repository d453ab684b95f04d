package settings

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/doomerang-settings/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		row     Row
		want    Kind
		wantErr error
	}{
		{name: "type only", row: Row{Type: "Checkbox"}, want: KindCheckbox},
		{name: "payload only", row: Row{Slider: &SliderRow{}}, want: KindSlider},
		{name: "matching type and payload", row: Row{Type: "userInput", UserInput: &UserInputRow{}}, want: KindUserInput},
		{name: "nothing", row: Row{}, wantErr: ErrAmbiguousValue},
		{name: "two payloads", row: Row{Button: &ButtonRow{}, Slider: &SliderRow{}}, wantErr: ErrAmbiguousValue},
		{name: "conflicting type", row: Row{Type: "button", Slider: &SliderRow{}}, wantErr: ErrAmbiguousValue},
		{name: "unknown type", row: Row{Type: "knob"}, wantErr: ErrUnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.row.Kind()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRowSetting(t *testing.T) {
	t.Parallel()

	r := Row{
		Tag:              "Settings.Video.Quality",
		Caption:          "Quality",
		Owner:            fakeOwnerSpec,
		Getter:           fake("GetIndex"),
		SettingsToUpdate: []string{"Settings.Video.Shadows", "bad tag"},
		ShowNextTo:       "Settings.Video.Resolution",
		LineHeight:       32,
		Combobox: &ComboboxRow{
			Members:    []string{"Low", "High"},
			GetMembers: fake("GetMembers"),
			Justify:    "center",
		},
	}

	s, err := r.Setting()
	require.NoError(t, err)
	assert.Equal(t, tags.New("Settings.Video.Quality"), s.Tag())
	assert.Equal(t, "Fake::GetIndex", s.Primary.Getter.String())
	assert.False(t, s.Primary.Setter.IsValid())
	assert.Equal(t, []tags.Tag{tags.New("Settings.Video.Shadows")}, s.Primary.SettingsToUpdate.Tags())
	assert.Equal(t, tags.New("Settings.Video.Resolution"), s.Primary.ShowNextTo)
	assert.Equal(t, 32.0, s.Primary.Layout.LineHeight)

	c, ok := s.Value.(*Combobox)
	require.True(t, ok)
	assert.Equal(t, []string{"Low", "High"}, c.Members)
	assert.Equal(t, "Fake::GetMembers", c.GetMembers.String())
	assert.Equal(t, AlignCenter, c.Justify)
	assert.Equal(t, -1, c.index)

	_, err = Row{Type: "checkbox"}.Setting()
	assert.ErrorIs(t, err, ErrInvalidTag)
}

const videoTable = `
table: Video
rows:
  - tag: Settings.Video.VSync
    type: checkbox
    caption: V-Sync
    owner: {class: Fake, function: Get}
    getter: {class: Fake, function: IsFlag}
    setter: {class: Fake, function: SetFlag}
  - tag: Settings.Video.Quality
    caption: Quality
    combobox:
      members: [Low, Medium, High]
    settingsToUpdate: [Settings.Video.VSync]
`

func TestYAMLSource(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"tables/video.yaml":   {Data: []byte(videoTable)},
		"tables/footer.yaml":  {Data: []byte("rows:\n  - tag: Settings.Footer.Back\n    type: button\n")},
		"tables/broken.yaml":  {Data: []byte("rows: [")},
		"tables/unknown.yaml": {Data: []byte("rows:\n  - tag: X\n    type: dial\n")},
	}

	tables, err := YAMLSource{FS: fsys, Paths: []string{"tables/video.yaml", "tables/footer.yaml"}}.Tables()
	require.NoError(t, err)
	require.Len(t, tables, 2)

	assert.Equal(t, "Video", tables[0].Name)
	require.Len(t, tables[0].Rows, 2)
	assert.Equal(t, "V-Sync", tables[0].Rows[0].Caption)
	assert.Equal(t, "SetFlag", tables[0].Rows[0].Setter.Function)
	assert.Equal(t, []string{"Low", "Medium", "High"}, tables[0].Rows[1].Combobox.Members)
	kind, err := tables[0].Rows[1].Kind()
	require.NoError(t, err)
	assert.Equal(t, KindCombobox, kind)

	assert.Equal(t, "footer", tables[1].Name, "name defaults to the file name")

	_, err = YAMLSource{FS: fsys, Paths: []string{"tables/broken.yaml"}}.Tables()
	assert.Error(t, err)

	_, err = YAMLSource{FS: fsys, Paths: []string{"tables/missing.yaml"}}.Tables()
	assert.Error(t, err)

	// Unknown types decode fine; they are rejected when the setting is built.
	tables, err = YAMLSource{FS: fsys, Paths: []string{"tables/unknown.yaml"}}.Tables()
	require.NoError(t, err)
	_, err = tables[0].Rows[0].Setting()
	assert.ErrorIs(t, err, ErrUnknownType)
}
