package get_available_slots

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/store"
)

// UseCase use case для получения сетки слотов с занятостью
type UseCase struct {
	store  StateStore
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store StateStore, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

// Execute выполняет use case получения слотов
// Слот, отмеченный свободным, можно бронировать на момент вызова;
// окончательная проверка выполняется при создании записи
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	date := strings.TrimSpace(req.Date)
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, req.Date)
	}

	var resp Response
	uc.store.Read(func(st *store.State) {
		resp = Response{
			Date:      date,
			StartHour: st.Settings.StartHour,
			EndHour:   st.Settings.EndHour,
			Slots:     buildSlots(date, st.Settings, st.Appointments),
		}
	})

	uc.logger.Info("GetAvailableSlots: date=%s, %d slots, %d available",
		date, len(resp.Slots), countAvailable(resp.Slots))

	return &resp, nil
}
