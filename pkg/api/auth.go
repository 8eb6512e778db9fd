package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль (plaintext, хешируется на сервере через bcrypt)
	Name     string `json:"name"`     // отображаемое имя
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	UserID  string `json:"user_id"` // UUID пользователя
	Message string `json:"message"` // сообщение об успешной регистрации
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken  string `json:"access_token"` // JWT access token
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Subscription string `json:"subscription"` // free | pro
	ExpiresIn    int64  `json:"expires_in"`   // время жизни access token в секундах
}

// UserProfile представляет профиль текущего пользователя
type UserProfile struct {
	UserID       string   `json:"user_id"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Subscription string   `json:"subscription"`
	HomeRiver    string   `json:"home_river,omitempty"`
	HomeLat      *float64 `json:"home_lat,omitempty"`
	HomeLon      *float64 `json:"home_lon,omitempty"`
}

// UpdateProfileRequest представляет запрос на обновление профиля.
// Nil поля не изменяются
type UpdateProfileRequest struct {
	Name      *string  `json:"name,omitempty"`
	HomeRiver *string  `json:"home_river,omitempty"`
	HomeLat   *float64 `json:"home_lat,omitempty"`
	HomeLon   *float64 `json:"home_lon,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // человекочитаемое описание ошибки
	Upgrade bool   `json:"upgrade,omitempty"` // true если ошибка устраняется апгрейдом до Pro
}
