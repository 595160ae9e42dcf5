package math

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. The local matrix is cached and only
 * rebuilt after a property changes.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief The rotation in the world. */
	Rotation Quaternion
	/** @brief The scale in the world. */
	Scale Vec3
	/** @brief Indicates if the local matrix is dirty and needs to be rebuilt. */
	IsDirty bool
	/** @brief The cached local world matrix. */
	Local Mat4
	/** @brief A pointer to a parent transform if one is assigned. Can be nil. */
	Parent *Transform
}

func NewTransform() *Transform {
	return NewTransformFromPositionRotationScale(NewVec3Zero(), NewQuatIdentity(), NewVec3One())
}

func NewTransformFromPosition(position Vec3) *Transform {
	return NewTransformFromPositionRotationScale(position, NewQuatIdentity(), NewVec3One())
}

func NewTransformFromRotation(rotation Quaternion) *Transform {
	return NewTransformFromPositionRotationScale(NewVec3Zero(), rotation, NewVec3One())
}

func NewTransformFromPositionRotation(position Vec3, rotation Quaternion) *Transform {
	return NewTransformFromPositionRotationScale(position, rotation, NewVec3One())
}

func NewTransformFromPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) *Transform {
	return &Transform{
		Position: position,
		Rotation: rotation,
		Scale:    scale,
		IsDirty:  true,
		Local:    NewMat4Identity(),
		Parent:   nil,
	}
}

func (t *Transform) SetPosition(position Vec3) {
	t.Position = position
	t.IsDirty = true
}

func (t *Transform) Translate(translation Vec3) {
	t.Position = t.Position.Add(translation)
	t.IsDirty = true
}

func (t *Transform) SetRotation(rotation Quaternion) {
	t.Rotation = rotation
	t.IsDirty = true
}

func (t *Transform) Rotate(rotation Quaternion) {
	t.Rotation = t.Rotation.Mul(rotation)
	t.IsDirty = true
}

func (t *Transform) SetScale(scale Vec3) {
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform) SetPositionRotation(position Vec3, rotation Quaternion) {
	t.Position = position
	t.Rotation = rotation
	t.IsDirty = true
}

func (t *Transform) SetPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
	t.IsDirty = true
}

/**
 * @brief Retrieves the local transformation matrix, recalculating it
 * from position, rotation and scale if it is dirty.
 */
func (t *Transform) GetLocal() Mat4 {
	if t.IsDirty {
		tr := NewMat4Translation(t.Position).Mul(t.Rotation.ToMat4())
		tr = tr.Mul(NewMat4Scale(t.Scale))
		t.Local = tr
		t.IsDirty = false
	}
	return t.Local
}

/**
 * @brief Retrieves the world matrix of the transform by walking the
 * parent chain.
 */
func (t *Transform) GetWorld() Mat4 {
	l := t.GetLocal()
	if t.Parent != nil {
		p := t.Parent.GetWorld()
		return p.Mul(l)
	}
	return l
}
