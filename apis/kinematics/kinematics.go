package kinematics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-catalog/apis"
	"github.com/supakorn-kn/go-catalog/errors"
	"github.com/supakorn-kn/go-catalog/kinematics"
	"github.com/supakorn-kn/go-catalog/metrics"
)

type DistanceRequest struct {
	InitialDistance kinematics.Quantity `json:"initial_distance"`
	Velocity        kinematics.Quantity `json:"velocity"`
	Elapsed         kinematics.Quantity `json:"elapsed"`
}

type FuelRequest struct {
	InitialFuel kinematics.Quantity `json:"initial_fuel"`
	BurnRate    kinematics.Quantity `json:"burn_rate"`
	Elapsed     kinematics.Quantity `json:"elapsed"`
	Policy      string              `json:"policy,omitempty"`
}

type VelocityRequest struct {
	InitialVelocity kinematics.Quantity `json:"initial_velocity"`
	Acceleration    kinematics.Quantity `json:"acceleration"`
	Elapsed         kinematics.Quantity `json:"elapsed"`
}

type MissionResult struct {
	kinematics.Report
	Lines []string `json:"lines"`
}

type KinematicsAPI struct {
	mission kinematics.Mission
}

func NewKinematicsAPI(mission kinematics.Mission) *KinematicsAPI {
	return &KinematicsAPI{mission: mission}
}

func (api *KinematicsAPI) Register(group *gin.RouterGroup) {

	group.POST("distance", func(ctx *gin.Context) {

		var req DistanceRequest
		if !bind(ctx, &req) {
			return
		}

		result, err := kinematics.ComputeDistance(req.InitialDistance, req.Velocity, req.Elapsed)
		respond(ctx, "distance", result, err)
	})

	group.POST("fuel", func(ctx *gin.Context) {

		var req FuelRequest
		if !bind(ctx, &req) {
			return
		}

		policy, err := kinematics.ParseDepletionPolicy(req.Policy)
		if err != nil {
			respond(ctx, "fuel", nil, err)
			return
		}

		result, err := kinematics.ComputeRemainingFuel(req.InitialFuel, req.BurnRate, req.Elapsed, policy)
		respond(ctx, "fuel", result, err)
	})

	group.POST("velocity", func(ctx *gin.Context) {

		var req VelocityRequest
		if !bind(ctx, &req) {
			return
		}

		result, err := kinematics.ComputeFinalVelocity(req.InitialVelocity, req.Acceleration, req.Elapsed)
		respond(ctx, "velocity", result, err)
	})

	group.GET("mission", func(ctx *gin.Context) {

		policy, err := kinematics.ParseDepletionPolicy(ctx.Query("policy"))
		if err != nil {
			respond(ctx, "mission", nil, err)
			return
		}

		report, err := api.mission.Report(policy)
		if err != nil {
			respond(ctx, "mission", nil, err)
			return
		}

		respond(ctx, "mission", MissionResult{Report: report, Lines: report.Lines()}, nil)
	})
}

func bind(ctx *gin.Context, req any) bool {

	if err := ctx.ShouldBindJSON(req); err != nil {
		apis.WriteErrorJSON(ctx, errors.DataValidationFailedError.New(err.Error()))
		return false
	}

	return true
}

func respond(ctx *gin.Context, operation string, result any, err error) {

	if err != nil {

		kind := "unknown"
		if asserted, ok := errors.TryAssertError(err); ok {
			kind = asserted.Name
		}
		metrics.KinematicsErrorsTotal.WithLabelValues(operation, kind).Inc()

		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, apis.Response{Result: result})
}
