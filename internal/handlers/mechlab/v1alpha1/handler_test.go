package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/builder"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/calculator"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/techbase"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/validation"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/handlers/mechlab/v1alpha1"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/services/mechlab"
	mechlabmock "github.com/SwiggitySwerve/megamek-web-sub007/internal/services/mechlab/mock"
)

const bufSize = 1024 * 1024

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mechlabmock.MockService
	server      *grpc.Server
	conn        *grpc.ClientConn
	client      v1alpha1.MechLabServiceClient
	methods     []string
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mechlabmock.NewMockService(s.ctrl)
	s.ctx = context.Background()
	s.methods = nil

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{MechLabService: s.mockService})
	s.Require().NoError(err)

	lis := bufconn.Listen(bufSize)
	s.server = grpc.NewServer(grpc.UnaryInterceptor(
		func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
			s.methods = append(s.methods, info.FullMethod)
			return next(ctx, req)
		},
	))
	v1alpha1.RegisterMechLabServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = v1alpha1.NewMechLabServiceClient(s.conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) sampleDraft() *mech.Draft {
	d, err := builder.CreateEmpty(50, mech.TechBaseInnerSphere)
	s.Require().NoError(err)
	d.ID = "draft-1"
	d.OwnerID = "pilot-1"
	d.SessionID = "draft-1"
	d.Name = "Enforcer"
	return &d
}

func (s *HandlerTestSuite) TestNewHandler() {
	_, err := v1alpha1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCreateDraft() {
	draft := s.sampleDraft()
	s.mockService.EXPECT().
		CreateDraft(gomock.Any(), &mechlab.CreateDraftInput{
			OwnerID:  "pilot-1",
			Name:     "Enforcer",
			Tonnage:  50,
			TechBase: mech.TechBaseInnerSphere,
		}).
		Return(&mechlab.CreateDraftOutput{Draft: draft}, nil)

	resp, err := s.client.CreateDraft(s.ctx, &v1alpha1.CreateDraftRequest{
		OwnerID:  "pilot-1",
		Name:     "Enforcer",
		Tonnage:  50,
		TechBase: mech.TechBaseInnerSphere,
	})
	s.Require().NoError(err)
	s.Equal(draft, resp.Draft)
	s.Equal([]string{"/mechlab.v1alpha1.MechLabService/CreateDraft"}, s.methods)
}

func (s *HandlerTestSuite) TestRequestValidation() {
	testCases := []struct {
		name string
		call func() error
	}{
		{name: "create without owner", call: func() error {
			_, err := s.client.CreateDraft(s.ctx, &v1alpha1.CreateDraftRequest{Tonnage: 50})
			return err
		}},
		{name: "create without tonnage", call: func() error {
			_, err := s.client.CreateDraft(s.ctx, &v1alpha1.CreateDraftRequest{OwnerID: "pilot-1"})
			return err
		}},
		{name: "get without id", call: func() error {
			_, err := s.client.GetDraft(s.ctx, &v1alpha1.GetDraftRequest{})
			return err
		}},
		{name: "armor without locations", call: func() error {
			_, err := s.client.SetArmor(s.ctx, &v1alpha1.SetArmorRequest{DraftID: "draft-1"})
			return err
		}},
		{name: "negative equipment index", call: func() error {
			_, err := s.client.RemoveEquipment(s.ctx, &v1alpha1.RemoveEquipmentRequest{DraftID: "draft-1", Index: -1})
			return err
		}},
		{name: "mode missing", call: func() error {
			_, err := s.client.SetTechBaseMode(s.ctx, &v1alpha1.SetTechBaseModeRequest{DraftID: "draft-1"})
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err)
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestErrorMapping() {
	s.Run("not found", func() {
		s.mockService.EXPECT().
			GetDraft(gomock.Any(), &mechlab.GetDraftInput{DraftID: "ghost"}).
			Return(nil, errors.NotFoundf("draft with ID ghost not found"))

		_, err := s.client.GetDraft(s.ctx, &v1alpha1.GetDraftRequest{DraftID: "ghost"})
		s.Equal(codes.NotFound, status.Code(err))
	})

	s.Run("construction failure keeps reasons", func() {
		s.mockService.EXPECT().
			SetEngine(gomock.Any(), gomock.Any()).
			Return(nil, errors.InvalidEngineRating(450, 9, 50, "rating exceeds maximum of 400"))

		_, err := s.client.SetEngine(s.ctx, &v1alpha1.SetEngineRequest{
			DraftID:    "draft-1",
			EngineType: mech.EngineStandard,
			WalkMP:     9,
		})
		s.Equal(codes.InvalidArgument, status.Code(err))

		converted := errors.FromGRPCError(err)
		s.True(errors.IsInvalidEngineRating(converted))
		s.Equal([]string{"rating exceeds maximum of 400"}, errors.GetReasons(converted))
	})

	s.Run("full location", func() {
		s.mockService.EXPECT().
			AddEquipment(gomock.Any(), gomock.Any()).
			Return(nil, errors.FailedPreconditionf("HEAD has no free critical slots"))

		_, err := s.client.AddEquipment(s.ctx, &v1alpha1.AddEquipmentRequest{
			DraftID:     "draft-1",
			EquipmentID: "ppc",
			Location:    mech.LocationHead,
		})
		s.Equal(codes.FailedPrecondition, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestUpdateDraftCarriesChanges() {
	walk := 5
	gyro := mech.GyroCompact
	s.mockService.EXPECT().
		UpdateDraft(gomock.Any(), &mechlab.UpdateDraftInput{
			DraftID: "draft-1",
			Changes: builder.Changes{WalkMP: &walk, GyroType: &gyro},
		}).
		Return(&mechlab.UpdateDraftOutput{Draft: s.sampleDraft()}, nil)

	_, err := s.client.UpdateDraft(s.ctx, &v1alpha1.UpdateDraftRequest{
		DraftID: "draft-1",
		Changes: builder.Changes{WalkMP: &walk, GyroType: &gyro},
	})
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TestSetTechBaseMode() {
	corrections := []techbase.Correction{{
		Category: mech.CategoryEngine,
		TechBase: mech.TechBaseClan,
		From:     string(mech.EngineLight),
		To:       string(mech.EngineStandard),
		Source:   techbase.SourceDefault,
	}}
	s.mockService.EXPECT().
		SetTechBaseMode(gomock.Any(), &mechlab.SetTechBaseModeInput{DraftID: "draft-1", Mode: mech.TechBaseModeClan}).
		Return(&mechlab.SetTechBaseModeOutput{Draft: s.sampleDraft(), Corrections: corrections}, nil)

	resp, err := s.client.SetTechBaseMode(s.ctx, &v1alpha1.SetTechBaseModeRequest{
		DraftID: "draft-1",
		Mode:    mech.TechBaseModeClan,
	})
	s.Require().NoError(err)
	s.Equal(corrections, resp.Corrections)
}

func (s *HandlerTestSuite) TestValidateAndCalculate() {
	result := validation.Result{
		IsValid: false,
		Errors: []validation.Issue{{
			Code:     validation.CodeOverweight,
			Message:  "draft weighs 52.0 tons, exceeding 50 tons",
			Severity: validation.SeverityError,
		}},
		Warnings: []validation.Issue{},
		Info:     []validation.Issue{},
	}
	s.mockService.EXPECT().
		ValidateDraft(gomock.Any(), &mechlab.ValidateDraftInput{DraftID: "draft-1"}).
		Return(&mechlab.ValidateDraftOutput{Result: result}, nil)

	vresp, err := s.client.ValidateDraft(s.ctx, &v1alpha1.ValidateDraftRequest{DraftID: "draft-1"})
	s.Require().NoError(err)
	s.Equal(result, vresp.Result)

	stats := engine.Stats{
		Totals: calculator.Totals{Tonnage: 50, RemainingWeight: 1.5, TotalSlots: 78},
		Cost:   calculator.CostBreakdown{Total: 1600000},
	}
	s.mockService.EXPECT().
		CalculateDraft(gomock.Any(), &mechlab.CalculateDraftInput{DraftID: "draft-1"}).
		Return(&mechlab.CalculateDraftOutput{Stats: stats}, nil)

	cresp, err := s.client.CalculateDraft(s.ctx, &v1alpha1.CalculateDraftRequest{DraftID: "draft-1"})
	s.Require().NoError(err)
	s.Equal(stats, cresp.Stats)
}
