package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// EmitSettings delivers a settings event. It is a no-op until
// EnableRuntimeEmitter or SetCustomEmitter replaces it.
var EmitSettings = func(ctx context.Context, name string, evt SettingsEvent) {}

func EnableRuntimeEmitter() {
	EmitSettings = func(ctx context.Context, name string, evt SettingsEvent) {
		if evt.SessionKey == "" {
			evt.SessionKey = SessionFromContext(ctx)
		}
		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, name, evt)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt SettingsEvent)) {
	if f == nil {
		EmitSettings = func(context.Context, string, SettingsEvent) {}
		return
	}
	EmitSettings = func(ctx context.Context, name string, evt SettingsEvent) {
		if evt.SessionKey == "" {
			evt.SessionKey = SessionFromContext(ctx)
		}
		f(ctx, name, evt)
	}
}
