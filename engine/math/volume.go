package math

/**
 * @brief A convex volume bounded by a set of planes whose gradients point
 * inward. A point is inside the volume when it is on the positive side of
 * every plane. A view frustum is the six-plane case.
 */
type ConvexVolume struct {
	Planes []Plane
}

func NewConvexVolume(planes []Plane) ConvexVolume {
	return ConvexVolume{Planes: planes}
}

/**
 * @brief Reports whether the point lies inside the volume. Points exactly on
 * a boundary plane count as inside. A volume with no planes contains
 * everything.
 */
func (cv ConvexVolume) IsPointInside(point Vec3) bool {
	for _, p := range cv.Planes {
		if p.DotCoord(point) < 0.0 {
			return false
		}
	}
	return true
}

/**
 * @brief Reports whether a sphere intersects or is contained by the volume.
 * The sphere is rejected only when its center is farther than radius behind
 * some plane, so the test is conservative for volumes with acute corners.
 */
func (cv ConvexVolume) IsSphereInside(center Vec3, radius float32) bool {
	for _, p := range cv.Planes {
		if p.DotCoord(center) < -radius {
			return false
		}
	}
	return true
}

/**
 * @brief Reports whether an axis-aligned box intersects or is contained by
 * the volume. The box is rejected when all eight corners are behind some
 * plane; like the sphere test this can keep boxes that graze a corner of
 * the volume without truly intersecting it.
 */
func (cv ConvexVolume) IsBoxInside(extents Extents3D) bool {
	corners := extents.Corners()
	for _, p := range cv.Planes {
		anyInFront := false
		for _, c := range corners {
			if p.DotCoord(c) >= 0.0 {
				anyInFront = true
				break
			}
		}
		if !anyInFront {
			return false
		}
	}
	return true
}
