package shader

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gradient-shine/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrProgramUnavailable is returned when a program cannot be compiled or
// linked. Callers do not retry.
var ErrProgramUnavailable = errors.New("shader program unavailable")

//go:embed glsl
var sources embed.FS

// OverrideDir, when set, is searched for sources before the built-in ones.
// It lets a user iterate on GLSL without rebuilding.
var OverrideDir string

const vertexSource = "base.vert"

func readSource(name string) (string, error) {
	if OverrideDir != "" {
		if data, err := os.ReadFile(filepath.Join(OverrideDir, name)); err == nil {
			utils.Debug("Shader: Using override %s", filepath.Join(OverrideDir, name))
			return string(data), nil
		}
	}
	data, err := sources.ReadFile(path.Join("glsl", name))
	if err != nil {
		return "", fmt.Errorf("read shader source %s: %w", name, err)
	}
	return string(data), nil
}

// PreprocessShader prepares a source for GLSL 330:
// - Injecting combo defines
// - Adding compatibility macros
// - Processing includes
func PreprocessShader(source string, combos map[string]int, name string) string {
	var sb strings.Builder
	sb.WriteString("#version 330\n")

	keys := make([]string, 0, len(combos))
	for k := range combos {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("#define %s %d\n", k, combos[k]))
	}

	sb.WriteString("#define saturate(x) clamp(x, 0.0, 1.0)\n")

	included := make(map[string]bool)
	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#include \"") && strings.HasSuffix(trimmed, "\"") {
			includeFile := strings.Trim(trimmed[len("#include \""):len(trimmed)-1], " ")
			if included[includeFile] {
				continue
			}
			content, err := readSource(includeFile)
			if err != nil {
				utils.Warn("Shader: %s - Could not resolve include: %s", name, includeFile)
				continue
			}
			sb.WriteString(strings.Trim(content, "\ufeff"))
			sb.WriteString("\n")
			included[includeFile] = true
			continue
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// LoadShader compiles the fragment program name (without extension) against
// the shared vertex stage. raylib panics are recovered and reported as
// ErrProgramUnavailable.
func LoadShader(name string, combos map[string]int) (rl.Shader, error) {
	if combos == nil {
		combos = make(map[string]int)
	}
	utils.Debug("Shader: Preprocessing %s (Combos: %v)", name, combos)

	vRaw, err := readSource(vertexSource)
	if err != nil {
		return rl.Shader{}, fmt.Errorf("%w: %v", ErrProgramUnavailable, err)
	}
	fRaw, err := readSource(name + ".frag")
	if err != nil {
		return rl.Shader{}, fmt.Errorf("%w: %v", ErrProgramUnavailable, err)
	}

	vSource := PreprocessShader(vRaw, combos, name)
	fSource := PreprocessShader(fRaw, combos, name)

	var shader rl.Shader
	func() {
		defer func() {
			if r := recover(); r != nil {
				utils.Error("Shader: %s - Compilation panic: %v", name, r)
				shader = rl.Shader{}
			}
		}()
		shader = rl.LoadShaderFromMemory(vSource, fSource)
	}()

	if shader.ID == 0 || !rl.IsShaderValid(shader) {
		return rl.Shader{}, fmt.Errorf("%w: %s failed to compile", ErrProgramUnavailable, name)
	}

	utils.Info("Shader: %s - Loaded successfully (ID: %d)", name, shader.ID)
	return shader, nil
}

// UnloadShader releases a program obtained from LoadShader. Empty shaders
// are ignored so teardown paths can call it unconditionally.
func UnloadShader(shader rl.Shader) {
	if shader.ID == 0 {
		return
	}
	utils.Debug("Shader: Unloading program %d", shader.ID)
	rl.UnloadShader(shader)
}
