// Package api is the typed client for the prediction server's REST API.
//
// # Operations
//
//   - Login, Verify, Me, UpdateMe: authentication and own profile
//   - ListUsers, Register, UpdateUser, DeleteUser: user administration
//   - ListModels, GetModel, TrainModel, RenameModel, DeleteModel: models
//   - PredictSingle, PredictBatch: predictions
//   - DashboardSummary, ListDatasets: read-only aggregates
//
// Every operation dispatches through the gateway, which attaches the
// stored credential and normalizes failures; methods here only shape
// requests and decode responses. Requests that back the original client's
// validated forms (register, user update, model rename) are checked with
// validator tags before they leave the process.
package api
