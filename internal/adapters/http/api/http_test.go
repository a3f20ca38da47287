package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/okian/homerank/internal/adapters/http/api"
	app "github.com/okian/homerank/internal/app"
	model "github.com/okian/homerank/internal/domain/model"
	"github.com/okian/homerank/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

const testMaxLimit = 100

func testListings() []model.Listing {
	return []model.Listing{
		{ID: "l1", PostalCode: "8000", EnergyRating: "A", FloorArea: 150, LotArea: 800, BuildYear: 2010, Price: 3_000_000, DaysListed: 20},
		{ID: "l2", PostalCode: "8000", EnergyRating: "D", FloorArea: 90, LotArea: 300, BuildYear: 1970, Price: 2_000_000, DaysListed: 120},
	}
}

// newMux wires a started service behind the API routes. When withSnapshot is
// false the service has no published dataset.
func newMux(t *testing.T, withSnapshot bool) *http.ServeMux {
	t.Helper()
	So(logger.Init(), ShouldBeNil)

	svc := app.New(app.WithWorkerCount(2))
	So(svc.Start(context.Background()), ShouldBeNil)
	t.Cleanup(svc.Stop)

	if withSnapshot {
		_, err := svc.PublishSnapshot(context.Background(), testListings())
		So(err, ShouldBeNil)
	}

	mux := http.NewServeMux()
	api.NewServer(svc, svc, testMaxLimit).Register(mux)
	return mux
}

func doRequest(mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestRankingsEndpoint(t *testing.T) {
	Convey("Given a service with a published snapshot", t, func() {
		mux := newMux(t, true)

		Convey("When getting the default ranking", func() {
			rec := doRequest(mux, http.MethodGet, "/rankings", "")

			Convey("Then the full ranking should be returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var resp struct {
					SnapshotID string      `json:"snapshot_id"`
					Entries    []api.Entry `json:"entries"`
				}
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.SnapshotID, ShouldNotBeEmpty)
				So(len(resp.Entries), ShouldEqual, 2)
				So(resp.Entries[0].ListingID, ShouldEqual, "l1")
				So(resp.Entries[0].Rank, ShouldEqual, 1)
			})
		})

		Convey("When getting a ranking with a limit", func() {
			rec := doRequest(mux, http.MethodGet, "/rankings?limit=1", "")

			Convey("Then the ranking should be truncated", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var resp struct {
					Entries []api.Entry `json:"entries"`
				}
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(len(resp.Entries), ShouldEqual, 1)
			})
		})

		Convey("When the limit is malformed", func() {
			So(doRequest(mux, http.MethodGet, "/rankings?limit=abc", "").Code, ShouldEqual, http.StatusBadRequest)
			So(doRequest(mux, http.MethodGet, "/rankings?limit=0", "").Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the limit exceeds the cap", func() {
			rec := doRequest(mux, http.MethodGet, "/rankings?limit=101", "")
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the profile is unknown", func() {
			rec := doRequest(mux, http.MethodGet, "/rankings?profile=luxury", "")

			Convey("Then the error should name the failure mode", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
				So(rec.Body.String(), ShouldContainSubstring, "unknown_profile")
			})
		})

		Convey("When posting a valid custom weight table", func() {
			body := `{"weights":{
				"energy": 50, "transit": 50, "lot_size": 0, "house_size": 0,
				"price_efficiency": 0, "build_year": 0, "basement": 0, "market_timing": 0
			}}`
			rec := doRequest(mux, http.MethodPost, "/rankings", body)

			Convey("Then a ranking under those weights should be returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var resp struct {
					Entries []api.Entry `json:"entries"`
				}
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(len(resp.Entries), ShouldEqual, 2)
				So(resp.Entries[0].ListingID, ShouldEqual, "l1") // energy A beats D
			})
		})

		Convey("When posting weights that do not sum to 100", func() {
			body := `{"weights":{
				"energy": 50, "transit": 30, "lot_size": 0, "house_size": 0,
				"price_efficiency": 0, "build_year": 0, "basement": 0, "market_timing": 0
			}}`
			rec := doRequest(mux, http.MethodPost, "/rankings", body)

			Convey("Then the weights should be rejected as invalid", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldContainSubstring, "invalid_weights")
			})
		})

		Convey("When posting a body that is not JSON", func() {
			So(doRequest(mux, http.MethodPost, "/rankings", "not json").Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When using an unsupported method", func() {
			So(doRequest(mux, http.MethodDelete, "/rankings", "").Code, ShouldEqual, http.StatusNotFound)
		})
	})

	Convey("Given a service with no snapshot", t, func() {
		mux := newMux(t, false)

		Convey("When getting the ranking", func() {
			rec := doRequest(mux, http.MethodGet, "/rankings", "")

			Convey("Then the service should answer unavailable", func() {
				So(rec.Code, ShouldEqual, http.StatusServiceUnavailable)
				So(rec.Body.String(), ShouldContainSubstring, "no_snapshot")
			})
		})
	})
}

func TestRankEndpoint(t *testing.T) {
	Convey("Given a service with a published snapshot", t, func() {
		mux := newMux(t, true)

		Convey("When getting a known listing's rank", func() {
			rec := doRequest(mux, http.MethodGet, "/rank/l2", "")

			Convey("Then its entry should be returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var entry api.Entry
				So(json.Unmarshal(rec.Body.Bytes(), &entry), ShouldBeNil)
				So(entry.ListingID, ShouldEqual, "l2")
				So(entry.Rank, ShouldEqual, 2)
			})
		})

		Convey("When getting a rank under a preset profile", func() {
			rec := doRequest(mux, http.MethodGet, "/rank/l1?profile=eco-conscious", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
		})

		Convey("When the listing is unknown", func() {
			rec := doRequest(mux, http.MethodGet, "/rank/nope", "")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the listing id is missing from the path", func() {
			So(doRequest(mux, http.MethodGet, "/rank/", "").Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestProfilesEndpoint(t *testing.T) {
	Convey("Given the API routes", t, func() {
		mux := newMux(t, true)

		Convey("When listing the profiles", func() {
			rec := doRequest(mux, http.MethodGet, "/profiles", "")

			Convey("Then all six presets should be returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var names []string
				So(json.Unmarshal(rec.Body.Bytes(), &names), ShouldBeNil)
				So(len(names), ShouldEqual, 6)
				So(names[0], ShouldEqual, "standard")
			})
		})

		Convey("When resolving a single profile", func() {
			rec := doRequest(mux, http.MethodGet, "/profiles/family-friendly", "")

			Convey("Then its weight table should be returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var resp struct {
					Name    string             `json:"name"`
					Weights map[string]float64 `json:"weights"`
				}
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Name, ShouldEqual, "family-friendly")
				So(resp.Weights["house_size"], ShouldEqual, 20.0)
				So(len(resp.Weights), ShouldEqual, 8)
			})
		})

		Convey("When resolving an unknown profile", func() {
			So(doRequest(mux, http.MethodGet, "/profiles/luxury", "").Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestTopScorersEndpoint(t *testing.T) {
	Convey("Given a service with a published snapshot", t, func() {
		mux := newMux(t, true)

		Convey("When getting the top scorers", func() {
			rec := doRequest(mux, http.MethodGet, "/topscorers", "")

			Convey("Then every category should have a winner", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var categories []struct {
					Key       string `json:"key"`
					ListingID string `json:"listing_id"`
				}
				So(json.Unmarshal(rec.Body.Bytes(), &categories), ShouldBeNil)
				So(len(categories), ShouldEqual, 8)
				for _, c := range categories {
					So(c.ListingID, ShouldNotBeEmpty)
				}
			})
		})
	})
}

func TestStatsAndHealthEndpoints(t *testing.T) {
	Convey("Given the API routes", t, func() {
		mux := newMux(t, true)

		Convey("When getting the stats", func() {
			rec := doRequest(mux, http.MethodGet, "/stats", "")

			Convey("Then the service state should be reported", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var stats map[string]any
				So(json.Unmarshal(rec.Body.Bytes(), &stats), ShouldBeNil)
				So(stats["started"], ShouldEqual, true)
			})
		})

		Convey("When probing the health endpoint", func() {
			rec := doRequest(mux, http.MethodGet, "/healthz", "")

			Convey("Then the metrics exposition should be served", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
			})
		})
	})
}
