package templates

// Template is a project template and its manifest.
type Template struct {
	// Name is the template identifier and the name of its embedded directory.
	Name string `yaml:"name"`

	// Description is shown in --help and dry-run output.
	Description string `yaml:"description"`

	// Default marks the template used when --template is not given.
	Default bool `yaml:"default"`

	// PostInstall runs after dependencies are installed.
	PostInstall []PostInstallStep `yaml:"postInstall"`
}

// PostInstallStep is a package binary executed through the selected package
// manager's executor (npx, yarn dlx, pnpm dlx, bunx) inside the project.
type PostInstallStep struct {
	Name    string   `yaml:"name"`
	Command []string `yaml:"command"`

	// Critical steps abort the run and trigger rollback when they fail.
	// Failures of other steps are reported as warnings.
	Critical bool `yaml:"critical"`
}

// Data is passed to every .tmpl file.
type Data struct {
	// ProjectName is the name as given on the command line.
	ProjectName string

	// PackageName is the package.json name derived from ProjectName.
	PackageName string

	// Version is the initial package version.
	Version string
}

// InitialVersion is written to every generated package.json.
const InitialVersion = "0.0.0"

// NewData builds render data for projectName.
func NewData(projectName string) Data {
	return Data{
		ProjectName: projectName,
		PackageName: PackageName(projectName),
		Version:     InitialVersion,
	}
}

// File is a rendered template file.
type File struct {
	// SourcePath is the path within the embedded filesystem.
	SourcePath string

	// TargetPath is the output path relative to the project directory.
	TargetPath string

	// Content is the rendered content.
	Content []byte
}
