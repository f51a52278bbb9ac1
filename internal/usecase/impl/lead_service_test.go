package impl

import (
	"context"
	"testing"

	"agroleads/internal/domain/entity"
	domainerrors "agroleads/internal/domain/errors"
	"agroleads/internal/domain/repository"
	mockRepo "agroleads/internal/mocks/repository"
	"agroleads/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// leadServiceFixtures holds all test dependencies for lead service tests.
type leadServiceFixtures struct {
	service  usecase.LeadUsecase
	leadRepo *mockRepo.MockLeadRepository
}

func createTestLeadService(t *testing.T) leadServiceFixtures {
	leadRepo := mockRepo.NewMockLeadRepository(t)
	service := NewLeadService(LeadServiceParams{LeadRepo: leadRepo})

	return leadServiceFixtures{
		service:  service,
		leadRepo: leadRepo,
	}
}

func strPtr(s string) *string {
	return &s
}

func statusPtr(s entity.LeadStatus) *entity.LeadStatus {
	return &s
}

func TestLeadService_CreateLead_NormalizesCpf(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()

	fx.leadRepo.EXPECT().
		ExistsByCpf(ctx, "52998224725", uuid.Nil).
		Return(false, nil)

	fx.leadRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Lead")).
		Run(func(ctx context.Context, lead *entity.Lead) {
			assert.Equal(t, "52998224725", lead.Cpf)
			assert.Equal(t, entity.LeadStatusNew, lead.Status)
		}).
		Return(nil)

	lead, err := fx.service.CreateLead(ctx, usecase.CreateLeadInput{
		Name:         "Joao da Silva",
		Cpf:          "529.982.247-25",
		Municipality: "Sorriso",
		Comments:     "Referred by coop",
	})
	require.NoError(t, err)
	assert.NotNil(t, lead)
	assert.Equal(t, "52998224725", lead.Cpf)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	assert.Equal(t, "Sorriso", lead.Municipality)
}

func TestLeadService_CreateLead_InvalidCpf(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()

	lead, err := fx.service.CreateLead(ctx, usecase.CreateLeadInput{
		Name:         "Joao da Silva",
		Cpf:          "11111111111",
		Municipality: "Sorriso",
	})
	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCpf))
}

func TestLeadService_CreateLead_DuplicateCpf(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()

	fx.leadRepo.EXPECT().
		ExistsByCpf(ctx, "52998224725", uuid.Nil).
		Return(true, nil)

	// Create must not be reached when the CPF is already taken.
	lead, err := fx.service.CreateLead(ctx, usecase.CreateLeadInput{
		Name:         "Joao da Silva",
		Cpf:          "52998224725",
		Municipality: "Sorriso",
	})
	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.True(t, errors.Is(err, domainerrors.ErrCpfAlreadyRegistered))
}

func TestLeadService_CreateLead_DuplicateCpfRace(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()

	fx.leadRepo.EXPECT().
		ExistsByCpf(ctx, "52998224725", uuid.Nil).
		Return(false, nil)

	fx.leadRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Lead")).
		Return(repository.ErrDuplicateCpf)

	lead, err := fx.service.CreateLead(ctx, usecase.CreateLeadInput{
		Name:         "Joao da Silva",
		Cpf:          "52998224725",
		Municipality: "Sorriso",
	})
	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.True(t, errors.Is(err, domainerrors.ErrCpfAlreadyRegistered))
}

func TestLeadService_UpdateLead_NotFound(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.leadRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrLeadNotFound)

	lead, err := fx.service.UpdateLead(ctx, id, usecase.UpdateLeadInput{
		Name: strPtr("New Name"),
	})
	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.True(t, errors.Is(err, domainerrors.ErrLeadNotFound))
}

func TestLeadService_UpdateLead_SameCpfSkipsUniquenessCheck(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Lead{
		ID:           id,
		Name:         "Joao da Silva",
		Cpf:          "52998224725",
		Status:       entity.LeadStatusNew,
		Municipality: "Sorriso",
	}

	fx.leadRepo.EXPECT().
		FindByID(ctx, id).
		Return(existing, nil)

	fx.leadRepo.EXPECT().
		Update(ctx, id, mock.AnythingOfType("repository.LeadUpdate")).
		Run(func(ctx context.Context, id uuid.UUID, update repository.LeadUpdate) {
			assert.Nil(t, update.Cpf)
		}).
		Return(existing, nil)

	lead, err := fx.service.UpdateLead(ctx, id, usecase.UpdateLeadInput{
		Cpf: strPtr("52998224725"),
	})
	require.NoError(t, err)
	assert.NotNil(t, lead)
}

func TestLeadService_UpdateLead_CpfChange(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Lead{
		ID:     id,
		Cpf:    "52998224725",
		Status: entity.LeadStatusNew,
	}
	updated := &entity.Lead{
		ID:     id,
		Cpf:    "11144477735",
		Status: entity.LeadStatusNew,
	}

	fx.leadRepo.EXPECT().
		FindByID(ctx, id).
		Return(existing, nil)

	fx.leadRepo.EXPECT().
		ExistsByCpf(ctx, "11144477735", id).
		Return(false, nil)

	fx.leadRepo.EXPECT().
		Update(ctx, id, mock.AnythingOfType("repository.LeadUpdate")).
		Run(func(ctx context.Context, id uuid.UUID, update repository.LeadUpdate) {
			require.NotNil(t, update.Cpf)
			assert.Equal(t, "11144477735", *update.Cpf)
		}).
		Return(updated, nil)

	lead, err := fx.service.UpdateLead(ctx, id, usecase.UpdateLeadInput{
		Cpf: strPtr("111.444.777-35"),
	})
	require.NoError(t, err)
	assert.Equal(t, "11144477735", lead.Cpf)
}

func TestLeadService_UpdateLead_CpfTakenByAnotherLead(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Lead{
		ID:     id,
		Cpf:    "52998224725",
		Status: entity.LeadStatusNew,
	}

	fx.leadRepo.EXPECT().
		FindByID(ctx, id).
		Return(existing, nil)

	fx.leadRepo.EXPECT().
		ExistsByCpf(ctx, "11144477735", id).
		Return(true, nil)

	lead, err := fx.service.UpdateLead(ctx, id, usecase.UpdateLeadInput{
		Cpf: strPtr("11144477735"),
	})
	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.True(t, errors.Is(err, domainerrors.ErrCpfAlreadyRegistered))
}

func TestLeadService_UpdateLead_DuplicateCpfBackstopWithoutCpfInput(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Lead{
		ID:     id,
		Cpf:    "52998224725",
		Status: entity.LeadStatusNew,
	}

	fx.leadRepo.EXPECT().
		FindByID(ctx, id).
		Return(existing, nil)

	fx.leadRepo.EXPECT().
		Update(ctx, id, mock.AnythingOfType("repository.LeadUpdate")).
		Return(nil, repository.ErrDuplicateCpf)

	lead, err := fx.service.UpdateLead(ctx, id, usecase.UpdateLeadInput{
		Name: strPtr("New Name"),
	})
	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.True(t, errors.Is(err, domainerrors.ErrCpfAlreadyRegistered))
	assert.Contains(t, err.Error(), "52998224725")
}

func TestLeadService_UpdateLead_LostIsFrozen(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Lead{
		ID:     id,
		Cpf:    "52998224725",
		Status: entity.LeadStatusLost,
	}

	fx.leadRepo.EXPECT().
		FindByID(ctx, id).
		Return(existing, nil)

	lead, err := fx.service.UpdateLead(ctx, id, usecase.UpdateLeadInput{
		Status: statusPtr(entity.LeadStatusNegotiation),
	})
	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	assert.Contains(t, err.Error(), "Cannot change status from LOST")
}

func TestLeadService_UpdateLead_ConvertedOnlyToLost(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Lead{
		ID:     id,
		Cpf:    "52998224725",
		Status: entity.LeadStatusConverted,
	}
	lost := &entity.Lead{
		ID:     id,
		Cpf:    "52998224725",
		Status: entity.LeadStatusLost,
	}

	fx.leadRepo.EXPECT().
		FindByID(ctx, id).
		Return(existing, nil)

	fx.leadRepo.EXPECT().
		Update(ctx, id, mock.AnythingOfType("repository.LeadUpdate")).
		Return(lost, nil)

	lead, err := fx.service.UpdateLead(ctx, id, usecase.UpdateLeadInput{
		Status: statusPtr(entity.LeadStatusLost),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusLost, lead.Status)
}

func TestLeadService_UpdateLead_ConvertedCannotRegress(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Lead{
		ID:     id,
		Cpf:    "52998224725",
		Status: entity.LeadStatusConverted,
	}

	fx.leadRepo.EXPECT().
		FindByID(ctx, id).
		Return(existing, nil)

	lead, err := fx.service.UpdateLead(ctx, id, usecase.UpdateLeadInput{
		Status: statusPtr(entity.LeadStatusNew),
	})
	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	assert.Contains(t, err.Error(), "CONVERTED leads can only be marked as LOST")
}

func TestLeadService_UpdateLead_SameStatusIsNoopTransition(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Lead{
		ID:     id,
		Cpf:    "52998224725",
		Status: entity.LeadStatusLost,
	}

	fx.leadRepo.EXPECT().
		FindByID(ctx, id).
		Return(existing, nil)

	// Re-sending the current status is not a transition and must pass.
	fx.leadRepo.EXPECT().
		Update(ctx, id, mock.AnythingOfType("repository.LeadUpdate")).
		Run(func(ctx context.Context, id uuid.UUID, update repository.LeadUpdate) {
			assert.Nil(t, update.Status)
		}).
		Return(existing, nil)

	lead, err := fx.service.UpdateLead(ctx, id, usecase.UpdateLeadInput{
		Status: statusPtr(entity.LeadStatusLost),
	})
	require.NoError(t, err)
	assert.NotNil(t, lead)
}

func TestLeadService_DeleteLead_Success(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.leadRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.Lead{ID: id}, nil)

	fx.leadRepo.EXPECT().
		Delete(ctx, id).
		Return(true, nil)

	err := fx.service.DeleteLead(ctx, id)
	require.NoError(t, err)
}

func TestLeadService_DeleteLead_NotFound(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.leadRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrLeadNotFound)

	err := fx.service.DeleteLead(ctx, id)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLeadNotFound))
}

func TestLeadService_GetLead_NotFound(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.leadRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrLeadNotFound)

	lead, err := fx.service.GetLead(ctx, id)
	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.True(t, errors.Is(err, domainerrors.ErrLeadNotFound))
}

func TestLeadService_ListLeads_PassesFilter(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	filter := repository.LeadFilter{
		Status:       entity.LeadStatusNegotiation,
		Municipality: "Sorriso",
	}
	expected := []*entity.Lead{{Cpf: "52998224725"}}

	fx.leadRepo.EXPECT().
		FindAll(ctx, filter).
		Return(expected, nil)

	leads, err := fx.service.ListLeads(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, leads)
}

func TestLeadService_GetStatistics(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()

	fx.leadRepo.EXPECT().
		GetStatusStatistics(ctx).
		Return([]repository.StatusCount{
			{Status: entity.LeadStatusNew, Count: 5},
			{Status: entity.LeadStatusConverted, Count: 3},
		}, nil)

	fx.leadRepo.EXPECT().
		GetMunicipalityStatistics(ctx).
		Return([]repository.MunicipalityCount{
			{Municipality: "Sorriso", Count: 6},
			{Municipality: "Sinop", Count: 2},
		}, nil)

	stats, err := fx.service.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), stats.Total)
	assert.Equal(t, int64(5), stats.ByStatus["NEW"])
	assert.Equal(t, int64(3), stats.ByStatus["CONVERTED"])
	assert.Equal(t, int64(6), stats.ByMunicipality["Sorriso"])
	assert.Equal(t, int64(2), stats.ByMunicipality["Sinop"])
}

func TestLeadService_GetStatistics_StatusError(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()

	fx.leadRepo.EXPECT().
		GetStatusStatistics(ctx).
		Return(nil, errors.New("database error"))

	stats, err := fx.service.GetStatistics(ctx)
	assert.Error(t, err)
	assert.Nil(t, stats)
	assert.Contains(t, err.Error(), "failed to get status statistics")
}
