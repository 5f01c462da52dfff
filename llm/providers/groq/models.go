package groq

const (
	ModelLlama38B            = "llama3-8b-8192"
	ModelLlama370B           = "llama3-70b-8192"
	ModelLlama3370BVersatile = "llama-3.3-70b-versatile"
	ModelLlama318BInstant    = "llama-3.1-8b-instant"
)
