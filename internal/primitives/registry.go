package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/visual"
)

// Cache maps visual shapes to meshes and visual nodes to materials. Meshes are
// shared per shape and created lazily on first draw so GPU resources are
// allocated after the window/OpenGL context exists. Materials are per node
// (each entity owns its tint) and are released through the node's release
// hook.
type Cache struct {
	meshes    map[visual.Shape]rl.Mesh
	mtls      map[*visual.Node]rl.Material
	shader    rl.Shader
	hasShader bool
	viewPos   [3]float32 // camera position, set each frame for lighting
	lightDir  [3]float32 // direction to light (normalized), set each frame
}

// defaultSphereRings and defaultSphereSlices control sphere mesh resolution.
const defaultSphereRings = 16
const defaultSphereSlices = 16

// NewCache returns a cache with no GPU resources; they are created on first
// DrawNode.
func NewCache() *Cache {
	return &Cache{
		meshes:   make(map[visual.Shape]rl.Mesh),
		mtls:     make(map[*visual.Node]rl.Material),
		lightDir: [3]float32{0.5, 1, 0.5}, // default: from above-right
	}
}

// SetView sets camera position and direction-to-light for this frame. Call
// once per frame before drawing nodes so the lit shader gets correct shading.
func (c *Cache) SetView(viewPos, lightDir [3]float32) {
	c.viewPos = viewPos
	c.lightDir = lightDir
}

// Releaser returns the hook the registry attaches to visual nodes: it frees
// the node's material. The node guards that it runs at most once, and it runs
// synchronously within delete/clear.
func (c *Cache) Releaser() func(*visual.Node) {
	return func(n *visual.Node) {
		mtl, ok := c.mtls[n]
		if !ok {
			return
		}
		delete(c.mtls, n)
		rl.UnloadMaterial(mtl)
	}
}

// ensureMesh creates the shared mesh for a shape if not yet cached.
// Sphere radius is 0.5 so diameter = 1, matching the unit cube side length.
func (c *Cache) ensureMesh(shape visual.Shape) rl.Mesh {
	if mesh, ok := c.meshes[shape]; ok {
		return mesh
	}
	var mesh rl.Mesh
	switch shape {
	case visual.ShapeSphere:
		mesh = rl.GenMeshSphere(0.5, defaultSphereRings, defaultSphereSlices)
	default:
		mesh = rl.GenMeshCube(1, 1, 1)
	}
	c.meshes[shape] = mesh
	return mesh
}

// ensureMaterial creates the node's material if not yet cached, with the lit
// shader when it compiled.
func (c *Cache) ensureMaterial(n *visual.Node) rl.Material {
	if mtl, ok := c.mtls[n]; ok {
		return mtl
	}
	if !c.hasShader {
		c.shader = rl.LoadShaderFromMemory(litVS, litFS)
		c.hasShader = true
	}
	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(c.shader) {
		mtl.Shader = c.shader
	}
	c.mtls[n] = mtl
	return mtl
}

// DrawNode draws one visual node (not its sub-nodes) with its own tint.
// Must be called between BeginMode3D and EndMode3D; SetView must have been
// called this frame.
func (c *Cache) DrawNode(n *visual.Node) {
	mesh := c.ensureMesh(n.Shape)
	mtl := c.ensureMaterial(n)
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tintColor(n)
	}
	c.setLitShaderUniforms(mtl.Shader)
	sx, sy, sz := n.Scale[0], n.Scale[1], n.Scale[2]
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	scaleM := rl.MatrixScale(sx, sy, sz)
	transM := rl.MatrixTranslate(n.Position[0], n.Position[1], n.Position[2])
	rl.DrawMesh(mesh, mtl, rl.MatrixMultiply(scaleM, transM))
}

// Unload frees the shared meshes and shader at shutdown. Node materials are
// freed through Releaser when entities are deleted; any still live here are
// freed too.
func (c *Cache) Unload() {
	for n, mtl := range c.mtls {
		delete(c.mtls, n)
		rl.UnloadMaterial(mtl)
	}
	for shape, mesh := range c.meshes {
		delete(c.meshes, shape)
		rl.UnloadMesh(&mesh)
	}
	if c.hasShader && rl.IsShaderValid(c.shader) {
		rl.UnloadShader(c.shader)
		c.hasShader = false
	}
}

// tintColor converts a node's linear RGB tint and alpha to an 8-bit color.
func tintColor(n *visual.Node) rl.Color {
	return rl.NewColor(to8(n.Color[0]), to8(n.Color[1]), to8(n.Color[2]), to8(n.Alpha))
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Lit shader: simple directional light + ambient, same vertex attributes as
// raylib meshes (vertexPosition, vertexTexCoord, vertexNormal).
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// defaultAmbient is the ambient term (dim so shadowed areas aren't pure black).
var defaultAmbient = [4]float32{0.2, 0.22, 0.26, 1.0}

// defaultLightColor is a soft warm-white for the directional light.
var defaultLightColor = [3]float32{1.0, 0.98, 0.95}

// defaultLightIntensity scales the directional diffuse (0–1).
const defaultLightIntensity = float32(0.75)

// defaultSpecularPower controls highlight tightness (higher = smaller, sharper highlight).
const defaultSpecularPower = float32(48.0)

// defaultSpecularStrength scales specular contribution (0–1).
const defaultSpecularStrength = float32(0.35)

// setLitShaderUniforms sets viewPos, lightDir, ambient, light color/intensity,
// and specular on the given shader (cgo-safe: local arrays).
func (c *Cache) setLitShaderUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{c.viewPos[0], c.viewPos[1], c.viewPos[2]}
	lightDir := [3]float32{c.lightDir[0], c.lightDir[1], c.lightDir[2]}
	amb := [4]float32{defaultAmbient[0], defaultAmbient[1], defaultAmbient[2], defaultAmbient[3]}
	lightColor := [3]float32{defaultLightColor[0], defaultLightColor[1], defaultLightColor[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}
