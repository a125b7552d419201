package director

import "go.uber.org/zap"

// LogDiagnostics validates every scene and logs the outcome per scene.
// It returns the number of scenes that produced at least one issue.
func LogDiagnostics(logger *zap.Logger, scenes []*Config) int {
	failed := 0
	for i, cfg := range scenes {
		if !LogScene(logger, i, Check(cfg, i)) {
			failed++
		}
	}
	return failed
}

// LogScene logs the issues already found for one scene, or a success marker
// when there are none. fields are attached to the entry. It reports whether
// the scene was clean.
func LogScene(logger *zap.Logger, scene int, issues Issues, fields ...zap.Field) bool {
	if logger == nil {
		logger = zap.NewNop()
	}

	fields = append([]zap.Field{zap.Int("scene", scene)}, fields...)
	if len(issues) == 0 {
		logger.Info("director config valid", fields...)
		return true
	}
	logger.Warn("director config has issues", append(fields,
		zap.Int("count", len(issues)),
		zap.Strings("issues", issues.Strings()),
	)...)
	return false
}
