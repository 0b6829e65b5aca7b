package validation

// Task name length is an input-buffer concern at the presentation edge, not a
// domain constraint. The domain accepts any non-empty name.
const (
	TaskNameMinLength = 1
	TaskNameMaxLength = 255
)

// TaskValidator provides validation for task input at the presentation edge
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTaskName validates a user-entered task name
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	trimmedName := tv.validator.TrimAndValidateString(name)

	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("task name")
		return validationError
	}

	if !tv.validator.IsValidStringLength(trimmedName, TaskNameMinLength, TaskNameMaxLength) {
		validationError.AddInvalidLengthError("task name", trimmedName, TaskNameMinLength, TaskNameMaxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(name), nil
}
