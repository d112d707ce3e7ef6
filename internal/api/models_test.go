// ABOUTME: Tests for model catalog and prediction operations
// ABOUTME: Covers multipart training uploads and single prediction bodies

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainModel_UploadsCSV(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/models/train", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "status", r.FormValue("target_column"))
		assert.Equal(t, "kelas-6a", r.FormValue("name"))

		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "nilai.csv", header.Filename)

		json.NewEncoder(w).Encode(ModelMeta{ID: 3, Name: "kelas-6a"})
	}))

	m, err := client.TrainModel(context.Background(), "kelas-6a", "nilai.csv",
		strings.NewReader("pai,status\n80,Berprestasi\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, m.ID)
}

func TestTrainModel_NameOptional(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, hasName := r.MultipartForm.Value["name"]
		assert.False(t, hasName)
		json.NewEncoder(w).Encode(ModelMeta{ID: 4, Name: "model-4"})
	}))

	m, err := client.TrainModel(context.Background(), "", "nilai.csv", strings.NewReader("x\n"))
	require.NoError(t, err)
	assert.Equal(t, "model-4", m.Name)
}

func TestRenameModel_RejectsEmptyName(t *testing.T) {
	called := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := client.RenameModel(context.Background(), 3, "")
	assert.Error(t, err)
	assert.False(t, called)
}

func TestDeleteModel(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/models/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeleteModel(context.Background(), 3))
}

func TestPredictSingle_SendsScoresAndModel(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/predict", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(1), body["model_id"])
		assert.Equal(t, 85.5, body["matematika"])
		assert.Equal(t, "Dewi", body["nama"])

		json.NewEncoder(w).Encode(PredictResponse{
			Prediction:  "Berprestasi",
			Probability: map[string]float64{"Berprestasi": 0.91, "Tidak Berprestasi": 0.09},
		})
	}))

	req := PredictRequest{ModelID: 1, Nama: "Dewi"}
	req.Matematika = 85.5
	resp, err := client.PredictSingle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Berprestasi", resp.Prediction)
	assert.InDelta(t, 0.91, resp.Probability["Berprestasi"], 1e-9)
}

func TestPredictBatch_SendsModelIDField(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/predict/batch", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "2", r.FormValue("model_id"))

		json.NewEncoder(w).Encode(BatchPredictResponse{TotalCount: 2, BerprestasiCount: 1, TidakBerprestasiCount: 1})
	}))

	resp, err := client.PredictBatch(context.Background(), 2, "siswa.csv", strings.NewReader("pai\n80\n70\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
}
