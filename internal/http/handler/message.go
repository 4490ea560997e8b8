package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// Plain text bodies the browser flow shows to the user.
const (
	msgInvalidCredentials = "Invalid username or password"
	msgUsernameTaken      = "Username already exists"
	msgNotAuthenticated   = "User not authenticated"
	msgUserNotFound       = "User not found"
	msgNoFile             = "No file uploaded"
	msgUnsupportedType    = "Unsupported file type"
	msgUploadSuccess      = "File uploaded and converted to JSON successfully"
)
