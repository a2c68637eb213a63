// Package pathviz renders a tracked path's trajectory and its
// diagnostic time series to a terminal. The braille canvas is adapted
// from internal/viz/canvas.go (pure math, no cgo dependency, unlike
// the rest of that package's raylib/OpenGL renderers); the camera
// projector is adapted from internal/viz/render3d.go's Vec3/Camera,
// trimmed to the plain-projection subset a single path plot needs.
package pathviz
