package renderer

// Matrices are uploaded untransposed; see shader.Program.SetMat4.
const meshVertexShader = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;

uniform mat4 uViewProj;
uniform mat4 uModel;
uniform mat4 uNormalMatrix;

out vec3 vNormal;
out vec3 vWorldPos;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    vWorldPos = world.xyz;
    vNormal = mat3(uNormalMatrix) * aNormal;
    gl_Position = uViewProj * world;
}
`

const meshFragmentShader = `#version 410 core
in vec3 vNormal;
in vec3 vWorldPos;

uniform vec3 uEye;
uniform vec3 uColor;
uniform vec3 uLightDir;
uniform vec3 uLightWeights; // ambient, headlight, key

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    vec3 toEye = normalize(uEye - vWorldPos);
    float head = max(dot(n, toEye), 0.0);
    float key = max(dot(n, uLightDir), 0.0);
    vec3 lit = uColor * dot(uLightWeights, vec3(1.0, head, key));
    FragColor = vec4(min(lit, vec3(1.0)), 1.0);
}
`

const lineVertexShader = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aColor;

uniform mat4 uViewProj;

out vec3 vColor;

void main() {
    vColor = aColor;
    gl_Position = uViewProj * vec4(aPosition, 1.0);
}
`

const lineFragmentShader = `#version 410 core
in vec3 vColor;
out vec4 FragColor;

void main() {
    FragColor = vec4(vColor, 1.0);
}
`
