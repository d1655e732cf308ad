package handlers

import (
	"fmt"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kontinentkm/SaveItBot/internal/media"
)

// fakeAPI records outbound traffic as an ordered event log:
//
//	"text:<body>"  plain message
//	"edit:<body>"  status edit
//	"photo"        single photo send
//	"video"        single video send
//	"group:<n>"    media group of n items
//	"delete"       message delete
type fakeAPI struct {
	events   []string
	groups   []tgbotapi.MediaGroupConfig
	groupErr error
	nextID   int
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	switch v := c.(type) {
	case tgbotapi.MessageConfig:
		f.events = append(f.events, "text:"+v.Text)
	case tgbotapi.EditMessageTextConfig:
		f.events = append(f.events, "edit:"+v.Text)
	case tgbotapi.PhotoConfig:
		f.events = append(f.events, "photo")
	case tgbotapi.VideoConfig:
		f.events = append(f.events, "video")
	default:
		f.events = append(f.events, fmt.Sprintf("other:%T", c))
	}
	f.nextID++
	return tgbotapi.Message{MessageID: f.nextID}, nil
}

func (f *fakeAPI) SendMediaGroup(cfg tgbotapi.MediaGroupConfig) ([]tgbotapi.Message, error) {
	f.groups = append(f.groups, cfg)
	f.events = append(f.events, fmt.Sprintf("group:%d", len(cfg.Media)))
	return nil, f.groupErr
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if _, ok := c.(tgbotapi.DeleteMessageConfig); ok {
		f.events = append(f.events, "delete")
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func photoFile(name string) media.File {
	return media.NewFile("/tmp/dl/" + name)
}

func files(names ...string) []media.File {
	out := make([]media.File, 0, len(names))
	for _, n := range names {
		out = append(out, photoFile(n))
	}
	return out
}

func TestSendAlbumsMixedSingleBatch(t *testing.T) {
	api := &fakeAPI{}

	err := SendAlbums(api, 42, files("a.jpg", "b.mp4", "c.png"))
	require.NoError(t, err)

	// one album, no part announcements
	assert.Equal(t, []string{"group:3"}, api.events)

	require.Len(t, api.groups, 1)
	group := api.groups[0].Media
	require.Len(t, group, 3)

	p0, ok := group[0].(tgbotapi.InputMediaPhoto)
	require.True(t, ok)
	assert.Equal(t, "photo", p0.Type)

	v1, ok := group[1].(tgbotapi.InputMediaVideo)
	require.True(t, ok)
	assert.Equal(t, "video", v1.Type)

	p2, ok := group[2].(tgbotapi.InputMediaPhoto)
	require.True(t, ok)
	assert.Equal(t, "photo", p2.Type)
}

func TestSendAlbumsTwelveFiles(t *testing.T) {
	api := &fakeAPI{}

	names := make([]string, 12)
	for i := range names {
		names[i] = fmt.Sprintf("f%02d.jpg", i)
	}

	err := SendAlbums(api, 42, files(names...))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"text:Part 1/2",
		"group:10",
		"text:Part 2/2",
		"group:2",
	}, api.events)
}

func TestSendAlbumsElevenFilesTrailingSingle(t *testing.T) {
	api := &fakeAPI{}

	items := make([]media.File, 0, 11)
	for i := 0; i < 10; i++ {
		items = append(items, photoFile(fmt.Sprintf("f%02d.jpg", i)))
	}
	items = append(items, photoFile("f10.mp4"))

	err := SendAlbums(api, 42, items)
	require.NoError(t, err)

	// the trailing one-item batch still gets its part announcement,
	// but goes out as a plain video send
	assert.Equal(t, []string{
		"text:Part 1/2",
		"group:10",
		"text:Part 2/2",
		"video",
	}, api.events)
}

func TestSendAlbumsNoFiles(t *testing.T) {
	api := &fakeAPI{}

	err := SendAlbums(api, 42, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"text:" + msgNoMedia}, api.events)
	assert.Empty(t, api.groups)
}

func TestSendAlbumsSingleFileKind(t *testing.T) {
	for _, tt := range []struct {
		name string
		file string
		want string
	}{
		{"single video", "clip.mp4", "video"},
		{"single photo", "pic.webp", "photo"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			err := SendAlbums(api, 42, files(tt.file))
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, api.events)
		})
	}
}
