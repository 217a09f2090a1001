// Package constants defines common constants used across use
package constants

// BinaryName is the name the tool is installed and invoked as
const BinaryName = "use"

// Runtime kinds
const (
	KindJava   = "java"
	KindGraal  = "graal"
	KindPython = "python"
)

// Default versions used when a kind is given without a version
const (
	DefaultJavaVersion   = "14"
	DefaultGraalVersion  = "11.0.6"
	DefaultPythonVersion = "14"
)

// Host locations the emitted statements point at
const (
	PythonFrameworkRoot = "/Library/Frameworks/Python.framework/Versions/"
	PythonBinSuffix     = "/bin"
	JavaHomeCommand     = "/usr/libexec/java_home -v "
)

// Environment variables
const (
	EnvPath      = "PATH"
	EnvJavaHome  = "JAVA_HOME"
	EnvShell     = "SHELL"
	EnvPrefix    = "USE"
	EnvConfigDir = "USE_CONFIG_DIR"
	EnvVerbose   = "USE_VERBOSE"
)

// Shell types
const (
	ShellPosix = "posix"
	ShellBash  = "bash"
	ShellZsh   = "zsh"
	ShellFish  = "fish"
)
