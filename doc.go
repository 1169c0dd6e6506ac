// Package lvmaze generates perfect mazes on odd-sized grids, places their
// entrance and exit, and measures the route between them.
//
// 🚀 What is lvmaze?
//
//	A small, deterministic maze engine with an explicit random stream:
//		• Grid: Wall / Open / Exit cells on a W×H board, both odd and ≥ 5
//		• Generators: randomized carve (stack), queue carve (FIFO),
//		  edge selection (Kruskal + union-find), frontier growth (Prim)
//		• Placement: random, corner-to-corner, side-to-side endpoints
//		• Solver: BFS shortest path, distance maps, perfect-maze check
//		• Levels & sessions: difficulty tiers, headless play, accuracy score
//		• Store: sqlite or PostgreSQL history of played runs
//		• Front ends: PNG export and an interactive terminal player
//
// ✨ Why lvmaze?
//
//   - Reproducible – one seeded stream drives every random choice
//   - Verifiable – every generator yields a spanning tree of the odd lattice
//   - No hidden state – grids, streams and loggers are passed in
//
// Packages:
//
//	grid/         — cell states, coordinates, bounds, text layout
//	rng/          — Source interface over math/rand streams
//	unionfind/    — array-indexed disjoint set
//	generator/    — the four carving algorithms behind one interface
//	placement/    — entrance/exit strategies with deterministic fallbacks
//	solver/       — breadth-first distances, routes and IsPerfect
//	level/        — difficulty table (size, algorithm, strategy, time limit)
//	session/      — one play-through: moves, win, expiry, accuracy
//	store/        — persisted runs (modernc sqlite / lib/pq)
//	logger/       — slog construction with lumberjack rotation
//	config/       — lvmaze.yaml loader
//	render/       — PNG images with entrance/exit arrows (image_utils)
//	cmd/mazegen   — command-line generator, verifier and recorder
//	cmd/mazeplay  — interactive terminal player (tcell, optional beep audio)
//
// Quick ASCII example (5×5, start (1,1)):
//
//	#####
//	#   #
//	### #
//	#  E#
//	#####
//
//	go run github.com/katalvlaran/lvmaze/cmd/mazegen -level hard -seed 42
package lvmaze
