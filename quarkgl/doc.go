// Package quarkgl is a small, predictable software 3D engine.
//
// It draws instanced models (one shared Geometry placed many times) lit by
// directional lights, viewed through a perspective camera that an
// OrbitController can drive. It is meant for visualization, not games, and has no
// GPU abstraction.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Culling/Clipping → Rasterization → Target.
//
// The renderer draws into a caller-provided Target and does not allocate in the
// render hot path once its depth buffer is sized.
package quarkgl
