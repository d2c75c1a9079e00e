package mocks

import "ragsettings/internal/settings"

// StoreProviderMock hands out Current, or settings.ErrOutsideProvider when
// Current is nil.
type StoreProviderMock struct {
	Current *settings.Store
}

func (m *StoreProviderMock) Store() (*settings.Store, error) {
	if m.Current == nil {
		return nil, settings.ErrOutsideProvider
	}
	return m.Current, nil
}
