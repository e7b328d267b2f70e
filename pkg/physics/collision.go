// pkg/physics/collision.go
package physics

// Sphere represents a spherical collision shape
type Sphere struct {
	Center Vector3D
	Radius float64
}

// Collides checks if two spheres are overlapping
func (s Sphere) Collides(other Sphere) bool {
	return s.Center.Distance(other.Center) < s.Radius+other.Radius
}

// Capsule represents an upright capsule collision shape: a vertical
// segment from Base to Base+Height, inflated by Radius. Players are
// approximated by capsules, balls by spheres.
type Capsule struct {
	Base   Vector3D
	Height float64
	Radius float64
}

// CollisionResult contains information about a single contact.
// Results are produced fresh each tick and must not be retained.
type CollisionResult struct {
	Collided         bool
	Normal           Vector3D // unit vector from body A toward body B
	Penetration      float64
	ContactPoint     Vector3D
	RelativeVelocity Vector3D // velocity of B relative to A
}

// CheckCollision performs detailed collision detection between two spheres.
func CheckCollision(a, b Sphere, va, vb Vector3D) CollisionResult {
	normal := b.Center.Sub(a.Center)
	distance := normal.Length()

	if distance > a.Radius+b.Radius {
		return CollisionResult{Collided: false}
	}

	penetration := a.Radius + b.Radius - distance

	// Coincident centers have no meaningful normal; pick a fixed axis so
	// overlapping bodies still separate deterministically.
	if distance == 0 {
		normal = Vector3D{X: 1}
	} else {
		normal = normal.Normalize()
	}
	contactPoint := a.Center.Add(normal.Scale(a.Radius))

	return CollisionResult{
		Collided:         true,
		Normal:           normal,
		Penetration:      penetration,
		ContactPoint:     contactPoint,
		RelativeVelocity: vb.Sub(va),
	}
}

// CheckCapsuleCollision tests two upright capsules. The contact normal is
// horizontal: bipedal bodies push each other sideways, never up.
func CheckCapsuleCollision(a, b Capsule, va, vb Vector3D) CollisionResult {
	if !verticalOverlap(a.Base.Z, a.Base.Z+a.Height, b.Base.Z, b.Base.Z+b.Height) {
		return CollisionResult{Collided: false}
	}

	normal := b.Base.Sub(a.Base).Horizontal()
	distance := normal.Length()
	if distance > a.Radius+b.Radius {
		return CollisionResult{Collided: false}
	}

	penetration := a.Radius + b.Radius - distance
	if distance == 0 {
		normal = Vector3D{X: 1}
	} else {
		normal = normal.Normalize()
	}

	contactZ := (maxf(a.Base.Z, b.Base.Z) + minf(a.Base.Z+a.Height, b.Base.Z+b.Height)) / 2
	contactPoint := a.Base.Add(normal.Scale(a.Radius))
	contactPoint.Z = contactZ

	return CollisionResult{
		Collided:         true,
		Normal:           normal,
		Penetration:      penetration,
		ContactPoint:     contactPoint,
		RelativeVelocity: vb.Sub(va),
	}
}

// CheckCapsuleSphere tests an upright capsule against a sphere by clamping
// the sphere center onto the capsule axis and running a sphere test.
func CheckCapsuleSphere(a Capsule, b Sphere, va, vb Vector3D) CollisionResult {
	axisZ := Clamp(b.Center.Z, a.Base.Z, a.Base.Z+a.Height)
	closest := Sphere{
		Center: Vector3D{X: a.Base.X, Y: a.Base.Y, Z: axisZ},
		Radius: a.Radius,
	}
	return CheckCollision(closest, b, va, vb)
}

// BodyParams carries the per-body quantities the resolver needs.
// InvMass is 1/mass; zero means immovable.
type BodyParams struct {
	InvMass float64
}

// Material pairs restitution and friction coefficients for a contact.
type Material struct {
	Restitution float64
	Friction    float64
}

// Resolution is the outcome of resolving one contact: velocity deltas and
// positional corrections for each body. ImpulseA and ImpulseB are the
// applied impulse vectors; for equal masses they are exact opposites.
type Resolution struct {
	ImpulseA    Vector3D
	ImpulseB    Vector3D
	DeltaVA     Vector3D
	DeltaVB     Vector3D
	CorrectionA Vector3D
	CorrectionB Vector3D
}

// Positional correction tuning. The slop leaves a hair of overlap so
// resting contacts don't jitter.
const (
	correctionPercent = 0.8
	penetrationSlop   = 0.005
)

// ResolveCollision computes the impulse along the contact normal plus a
// Coulomb-clamped friction impulse, and splits positional correction by
// inverse-mass share so heavier bodies displace less. The normal impulse
// is floored at zero: separating pairs never receive a sticking impulse.
func ResolveCollision(c CollisionResult, a, b BodyParams, m Material) Resolution {
	invSum := a.InvMass + b.InvMass
	if !c.Collided || invSum == 0 {
		return Resolution{}
	}

	velAlongNormal := c.RelativeVelocity.Dot(c.Normal)

	j := 0.0
	if velAlongNormal < 0 {
		j = -(1 + m.Restitution) * velAlongNormal / invSum
	}

	impulse := c.Normal.Scale(j)

	// Friction along the tangential component of the relative velocity,
	// clamped to the friction cone.
	tangential := c.RelativeVelocity.Sub(c.Normal.Scale(velAlongNormal))
	var frictionImpulse Vector3D
	if tl := tangential.Length(); tl > 0 {
		jt := Clamp(tl/invSum, 0, m.Friction*j)
		frictionImpulse = tangential.Normalize().Scale(-jt)
	}

	impulseB := impulse.Add(frictionImpulse)
	impulseA := impulseB.Scale(-1)

	correction := 0.0
	if c.Penetration > penetrationSlop {
		correction = (c.Penetration - penetrationSlop) * correctionPercent / invSum
	}

	return Resolution{
		ImpulseA:    impulseA,
		ImpulseB:    impulseB,
		DeltaVA:     impulseA.Scale(a.InvMass),
		DeltaVB:     impulseB.Scale(b.InvMass),
		CorrectionA: c.Normal.Scale(-correction * a.InvMass),
		CorrectionB: c.Normal.Scale(correction * b.InvMass),
	}
}

func verticalOverlap(aLo, aHi, bLo, bHi float64) bool {
	return aLo <= bHi && bLo <= aHi
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
