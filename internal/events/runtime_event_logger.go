package events

import (
	"context"
	"encoding/json"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

func logRuntimeEvent(ctx context.Context, name string, event SettingsEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		runtime.LogError(ctx, "loggers: failed to marshal settings event: "+err.Error())
		return
	}

	payload := string(data)

	switch name {
	case SettingsReset:
		runtime.LogWarning(ctx, payload)
	default:
		runtime.LogDebug(ctx, payload)
	}
}
