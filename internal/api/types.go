// ABOUTME: Wire types shared by the prediction server's REST endpoints
// ABOUTME: Field names mirror the server's JSON contract exactly

package api

import "github.com/prestasi/prestasi-cli/internal/permissions"

// User is an account as reported by the server.
type User struct {
	ID        string           `json:"id"`
	Username  string           `json:"username"`
	Name      string           `json:"name"`
	Role      permissions.Role `json:"role"`
	CreatedAt string           `json:"created_at"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// StudentScores holds the fourteen input features for a prediction:
// thirteen subject grades plus the absence count.
type StudentScores struct {
	PAI                 float64 `json:"pai"`
	PendidikanPancasila float64 `json:"pendidikan_pancasila"`
	BahasaIndonesia     float64 `json:"bahasa_indonesia"`
	Matematika          float64 `json:"matematika"`
	IPA                 float64 `json:"ipa"`
	IPS                 float64 `json:"ips"`
	BahasaInggris       float64 `json:"bahasa_inggris"`
	Penjas              float64 `json:"penjas"`
	TIK                 float64 `json:"tik"`
	SBK                 float64 `json:"sbk"`
	Prakarya            float64 `json:"prakarya"`
	BahasaSunda         float64 `json:"bahasa_sunda"`
	BTQ                 float64 `json:"btq"`
	Absen               float64 `json:"absen"`
}

// PredictRequest is the body for a single prediction.
type PredictRequest struct {
	StudentScores
	ModelID int    `json:"model_id"`
	Nama    string `json:"nama,omitempty"`
}

// PredictResponse is the outcome of a single prediction.
type PredictResponse struct {
	Prediction  string             `json:"prediction"`
	Probability map[string]float64 `json:"probability"`
	Nama        string             `json:"nama,omitempty"`
}

// ModelMetrics carries the quality numbers recorded at training time.
type ModelMetrics struct {
	Precision         float64            `json:"precision,omitempty"`
	Recall            float64            `json:"recall,omitempty"`
	F1Score           float64            `json:"f1_score,omitempty"`
	FeatureImportance map[string]float64 `json:"feature_importance,omitempty"`
	TestSize          float64            `json:"test_size,omitempty"`
	TrainingSamples   int                `json:"training_samples,omitempty"`
	TestSamples       int                `json:"test_samples,omitempty"`
}

// ModelMeta describes one trained model.
type ModelMeta struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Accuracy    *float64      `json:"accuracy,omitempty"`
	Metrics     *ModelMetrics `json:"metrics,omitempty"`
	DatasetPath string        `json:"dataset_path,omitempty"`
	CreatedAt   string        `json:"created_at"`
}

// DatasetMeta describes one uploaded training dataset.
type DatasetMeta struct {
	ID         int    `json:"id"`
	Name       string `json:"name,omitempty"`
	FilePath   string `json:"file_path,omitempty"`
	RowCount   *int   `json:"row_count,omitempty"`
	UploadedAt string `json:"uploaded_at"`
}

// PredictionStats aggregates prediction outcomes for the dashboard.
type PredictionStats struct {
	TotalPredictions      int `json:"total_predictions"`
	BerprestasiCount      int `json:"berprestasi_count"`
	TidakBerprestasiCount int `json:"tidak_berprestasi_count"`
}

// DashboardSummary is the landing-view aggregate.
type DashboardSummary struct {
	TotalModels         int              `json:"total_models"`
	TotalDatasets       int              `json:"total_datasets"`
	LatestModelAccuracy *float64         `json:"latest_model_accuracy,omitempty"`
	StatusDistribution  map[string]int   `json:"status_distribution,omitempty"`
	PredictionStats     *PredictionStats `json:"prediction_stats,omitempty"`
}

// BatchPredictResult is one scored row from a batch upload.
type BatchPredictResult struct {
	RowIndex    int                `json:"row_index"`
	Nama        string             `json:"nama"`
	KodeUnik    string             `json:"kode_unik,omitempty"`
	InputData   map[string]float64 `json:"input_data"`
	Prediction  string             `json:"prediction"`
	Probability map[string]float64 `json:"probability"`
}

// BatchPredictResponse is the outcome of scoring an uploaded CSV.
type BatchPredictResponse struct {
	Results               []BatchPredictResult `json:"results"`
	TotalCount            int                  `json:"total_count"`
	BerprestasiCount      int                  `json:"berprestasi_count"`
	TidakBerprestasiCount int                  `json:"tidak_berprestasi_count"`
}
