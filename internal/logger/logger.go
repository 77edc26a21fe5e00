package logger

// Logger is the logging contract shared by all components. The component
// argument tags the emitting subsystem; fields carry structured context.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}
