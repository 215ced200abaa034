package kinematics

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/supakorn-kn/go-catalog/errors"
	"github.com/supakorn-kn/go-catalog/kinematics"
)

type KinematicsAPISuite struct {
	suite.Suite
	g *gin.Engine
}

type quantityResponse struct {
	Result kinematics.Quantity `json:"result"`
	Error  *errors.BaseError   `json:"error"`
}

func (s *KinematicsAPISuite) SetupSuite() {

	gin.SetMode(gin.TestMode)

	g := gin.New()
	NewKinematicsAPI(kinematics.DefaultMission()).Register(g.Group("api/kinematics"))

	s.g = g
}

func (s *KinematicsAPISuite) post(target string, body any) (*httptest.ResponseRecorder, quantityResponse) {

	b, err := json.Marshal(body)
	s.Require().NoError(err)

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, target, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")

	s.g.ServeHTTP(recorder, req)

	var resp quantityResponse
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))

	return recorder, resp
}

func (s *KinematicsAPISuite) TestDistance() {

	s.Run("Should compute distance properly", func() {

		recorder, resp := s.post("/api/kinematics/distance", DistanceRequest{
			InitialDistance: kinematics.New(0, kinematics.Kilometers),
			Velocity:        kinematics.New(10000, kinematics.KilometersPerHour),
			Elapsed:         kinematics.New(3600, kinematics.Seconds),
		})
		s.Require().Equal(http.StatusOK, recorder.Code)
		s.Require().Nil(resp.Error)
		s.Require().Equal(kinematics.New(10000, kinematics.Kilometers), resp.Result)
	})

	s.Run("Should throw error when elapsed time is negative", func() {

		recorder, resp := s.post("/api/kinematics/distance", DistanceRequest{
			InitialDistance: kinematics.New(0, kinematics.Kilometers),
			Velocity:        kinematics.New(10000, kinematics.KilometersPerHour),
			Elapsed:         kinematics.New(-1, kinematics.Seconds),
		})
		s.Require().Equal(http.StatusBadRequest, recorder.Code)
		s.Require().True(errors.InvalidInputError.IsEqual(*resp.Error))
	})

	s.Run("Should throw error when the distance overflows", func() {

		recorder, resp := s.post("/api/kinematics/distance", DistanceRequest{
			InitialDistance: kinematics.New(0, kinematics.Kilometers),
			Velocity:        kinematics.New(1e308, kinematics.KilometersPerHour),
			Elapsed:         kinematics.New(1e10, kinematics.Hours),
		})
		s.Require().Equal(http.StatusBadRequest, recorder.Code)
		s.Require().NotNil(resp.Error)
		s.Require().True(errors.InvalidInputError.IsEqual(*resp.Error))
	})

	s.Run("Should throw error when units are missing", func() {

		recorder, resp := s.post("/api/kinematics/distance", map[string]any{
			"initial_distance": map[string]any{"value": 0},
			"velocity":         map[string]any{"value": 10000, "unit": "km/h"},
			"elapsed":          map[string]any{"value": 10, "unit": "s"},
		})
		s.Require().Equal(http.StatusBadRequest, recorder.Code)
		s.Require().True(errors.UnitMismatchError.IsEqual(*resp.Error))
	})
}

func (s *KinematicsAPISuite) TestFuel() {

	request := FuelRequest{
		InitialFuel: kinematics.New(100, kinematics.Kilograms),
		BurnRate:    kinematics.New(1, kinematics.KilogramsPerSecond),
		Elapsed:     kinematics.New(200, kinematics.Seconds),
	}

	s.Run("Should reject depletion by default", func() {

		recorder, resp := s.post("/api/kinematics/fuel", request)
		s.Require().Equal(http.StatusBadRequest, recorder.Code)
		s.Require().True(errors.DepletedFuelError.IsEqual(*resp.Error))
	})

	s.Run("Should clamp depletion when asked", func() {

		clamp := request
		clamp.Policy = "clamp"

		recorder, resp := s.post("/api/kinematics/fuel", clamp)
		s.Require().Equal(http.StatusOK, recorder.Code)
		s.Require().Equal(kinematics.New(0, kinematics.Kilograms), resp.Result)
	})

	s.Run("Should throw error when policy is unknown", func() {

		unknown := request
		unknown.Policy = "ignore"

		recorder, resp := s.post("/api/kinematics/fuel", unknown)
		s.Require().Equal(http.StatusBadRequest, recorder.Code)
		s.Require().True(errors.InvalidInputError.IsEqual(*resp.Error))
	})
}

func (s *KinematicsAPISuite) TestVelocity() {

	recorder, resp := s.post("/api/kinematics/velocity", VelocityRequest{
		InitialVelocity: kinematics.New(10000, kinematics.KilometersPerHour),
		Acceleration:    kinematics.New(3, kinematics.MetersPerSecondSquared),
		Elapsed:         kinematics.New(1, kinematics.Hours),
	})
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Require().Equal(kinematics.KilometersPerHour, resp.Result.Unit)
	s.Require().InDelta(48880, resp.Result.Value, 1e-6)

	recorder, resp = s.post("/api/kinematics/velocity", VelocityRequest{
		InitialVelocity: kinematics.New(10000, kinematics.KilometersPerHour),
		Acceleration:    kinematics.New(3, kinematics.KilometersPerHour),
		Elapsed:         kinematics.New(1, kinematics.Hours),
	})
	s.Require().Equal(http.StatusBadRequest, recorder.Code)
	s.Require().True(errors.UnitMismatchError.IsEqual(*resp.Error))

	recorder, resp = s.post("/api/kinematics/velocity", VelocityRequest{
		InitialVelocity: kinematics.New(0, kinematics.MetersPerSecond),
		Acceleration:    kinematics.New(1e308, kinematics.MetersPerSecondSquared),
		Elapsed:         kinematics.New(1e10, kinematics.Seconds),
	})
	s.Require().Equal(http.StatusBadRequest, recorder.Code)
	s.Require().True(errors.InvalidInputError.IsEqual(*resp.Error))
}

func (s *KinematicsAPISuite) TestMission() {

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/kinematics/mission", nil)
	s.g.ServeHTTP(recorder, req)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var resp struct {
		Result MissionResult `json:"result"`
	}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))

	expected, err := kinematics.DefaultMission().Report(kinematics.RejectDepletion)
	s.Require().NoError(err)
	s.Require().Equal(expected, resp.Result.Report)
	s.Require().Equal(expected.Lines(), resp.Result.Lines)
	s.Require().Equal("New Velocity: 48880.00 km/h", resp.Result.Lines[0])
}

func (s *KinematicsAPISuite) TestMalformedBody() {

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/kinematics/distance", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	s.g.ServeHTTP(recorder, req)

	s.Require().Equal(http.StatusBadRequest, recorder.Code)
}

func TestKinematicsAPI(t *testing.T) {
	suite.Run(t, new(KinematicsAPISuite))
}
