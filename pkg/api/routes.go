package api

import (
	"net/http"

	"github.com/getmockd/hrmockd/pkg/dataset"
	"github.com/getmockd/hrmockd/pkg/query"
)

// Route prefixes.
const (
	CorePrefix        = "/core/v1"
	RecruitmentPrefix = "/recruitment/v1"
)

// CollectionPath returns the list route for kind k.
func CollectionPath(k dataset.Kind) string {
	if k == dataset.KindCandidates {
		return RecruitmentPrefix + "/" + string(k)
	}
	return CorePrefix + "/" + string(k)
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /oauth/token", s.oauth.HandleToken)

	snap := s.snap
	registerCollection(mux, dataset.KindDepartments, snap.Departments)
	registerCollection(mux, dataset.KindLocations, snap.Locations)
	registerCollection(mux, dataset.KindPositions, snap.Positions)
	registerCollection(mux, dataset.KindUsers, snap.Users)
	registerCollection(mux, dataset.KindOnboardingUsers, snap.OnboardingUsers)
	registerCollection(mux, dataset.KindEmployees, snap.Employees)
	registerCollection(mux, dataset.KindLegalEntities, snap.LegalEntities)
	registerCollection(mux, dataset.KindPayrollCycles, snap.PayrollCycles)
	registerCollection(mux, dataset.KindLeaveTypes, snap.LeaveTypes)
	registerCollection(mux, dataset.KindLeaveRequests, snap.LeaveRequests)
	registerCollection(mux, dataset.KindCandidates, snap.Candidates)

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /openapi.json", s.handleOpenAPI)
	if s.metrics != nil {
		mux.Handle("GET "+s.metricsPath, s.metrics.handler())
	}
	mux.HandleFunc("GET /{$}", s.handleIndex)

	// Anything unmatched, including a known path with the wrong method.
	mux.HandleFunc("/", handleNotFound)
}

func registerCollection[T any](mux *http.ServeMux, k dataset.Kind, c *query.Collection[T]) {
	path := CollectionPath(k)
	mux.HandleFunc("GET "+path, handleList(c))
	mux.HandleFunc("GET "+path+"/{id}", handleGet(k, c))
}
