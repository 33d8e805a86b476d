package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dev4057/NoteFlow/cmd"
	"github.com/Dev4057/NoteFlow/model"
	"github.com/Dev4057/NoteFlow/recorder"
	"github.com/Dev4057/NoteFlow/sheet"
	"github.com/Dev4057/NoteFlow/store"
	"github.com/stretchr/testify/assert"
)

func play(r *recorder.Recorder, num uint8, ts float64) {
	r.Observe(model.NoteEvent{Number: num, Velocity: 80, Timestamp: ts})
}

func TestRecordSaveExportPipeline(t *testing.T) {
	r := recorder.New(50)
	r.Start()

	// C maj, then F maj after a long pause
	play(r, 60, 0)
	play(r, 64, 0.010)
	play(r, 67, 0.020)
	play(r, 65, 3.000)
	play(r, 69, 3.005)
	play(r, 72, 3.010)
	r.Stop()

	assert := assert.New(t)

	snap := r.Snapshot()
	assert.Len(snap.Events, 2)
	assert.Equal("C maj", snap.Events[0].Label)
	assert.Equal("F maj", snap.Events[1].Label)

	path := t.TempDir() + "/session.json"
	assert.NoError(store.Save(path, &snap))

	loaded, err := store.Load(path)
	assert.NoError(err)
	assert.Equal(snap, loaded)

	// the 3s pause splits the practice sheet into two sections
	var text bytes.Buffer
	assert.NoError(sheet.WriteText(&text, loaded, 2.0))
	assert.Contains(text.String(), "Section 2:")

	var mid bytes.Buffer
	assert.NoError(sheet.WriteSMF(&mid, loaded))
	assert.True(bytes.HasPrefix(mid.Bytes(), []byte("MThd")))
}

func TestJazzProgressionEndToEnd(t *testing.T) {
	r := recorder.New(50)
	r.Start()

	chords := [][]uint8{
		{62, 65, 69, 72}, // D min7
		{67, 71, 74, 77}, // G7
		{60, 64, 67, 71}, // C maj7
	}
	for i, nums := range chords {
		base := float64(i)
		for j, num := range nums {
			play(r, num, base+float64(j)*0.005)
		}
	}
	r.Stop()

	events := r.Events()
	assert := assert.New(t)
	assert.Len(events, 3)
	assert.Equal("D min7", events[0].Label)
	assert.Equal("G7", events[1].Label)
	assert.Equal("C maj7", events[2].Label)
	for _, ev := range events {
		assert.Equal(model.TypeChord, ev.Type)
		assert.Equal(0, ev.Inversion)
	}
}

func createClassifyReqBody(notes []uint8) io.Reader {
	body := model.ClassifyRequestBody{Notes: notes}
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestClassifyEndpoint(t *testing.T) {
	body := createClassifyReqBody([]uint8{64, 67, 72})
	req := httptest.NewRequest(http.MethodPost, "/classify", body)
	w := httptest.NewRecorder()
	cmd.HandleClassify(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var ev model.ClassifiedEvent
	err := json.Unmarshal(respBody, &ev)
	if err != nil {
		panic(err.Error())
	}

	// E4-G4-C5 is C maj in first inversion
	assert.Equal(model.TypeChord, ev.Type)
	assert.Equal("C maj", ev.Label)
	assert.Equal(0, ev.Root)
	assert.Equal(1, ev.Inversion)
}

func TestClassifyEndpointRejectsEmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/classify", bytes.NewReader([]byte(`{"notes":[]}`)))
	w := httptest.NewRecorder()
	cmd.HandleClassify(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)

	var errResp model.ErrorResponse
	assert.NoError(json.Unmarshal(respBody, &errResp))
	assert.NotEmpty(errResp.Error)
}
