package settings

// StoreKey es la key versionada del registro de ajustes.
const StoreKey = "SETTINGS_V1"

// ThemeMode define los modos de tema soportados.
// @Enum system, light, dark
type ThemeMode string

const (
	ThemeSystem ThemeMode = "system"
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
)

func validThemeMode(m ThemeMode) bool {
	switch m {
	case ThemeSystem, ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

// Settings son los ajustes de la app, independientes del core de tomas.
type Settings struct {
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	ThemeMode            ThemeMode `json:"themeMode"`
}

// Defaults es la base del default-merge: keys faltantes en storage
// caen a estos valores.
func Defaults() Settings {
	return Settings{
		NotificationsEnabled: true,
		ThemeMode:            ThemeLight,
	}
}
