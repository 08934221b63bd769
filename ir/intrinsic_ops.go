package ir

// IntrinsicOp names an intrinsic. The comment on each group lists the
// source layout the backend expects.
type IntrinsicOp string

// Variable access. Deref sources are SSA values defined by a Deref.
const (
	// srcs: [deref]
	IntrLoadDeref IntrinsicOp = "load_deref"
	// srcs: [deref, value]; WriteMask selects stored components.
	IntrStoreDeref IntrinsicOp = "store_deref"
	// srcs: [deref]
	IntrInterpAtCentroid IntrinsicOp = "interp_deref_at_centroid"
	// srcs: [deref, sample]
	IntrInterpAtSample IntrinsicOp = "interp_deref_at_sample"
	// srcs: [deref, offset]
	IntrInterpAtOffset IntrinsicOp = "interp_deref_at_offset"
)

// Buffer, shared and push-constant memory. Offsets are in bytes; block
// indices must be constants.
const (
	// srcs: [block, offset]
	IntrLoadUBO IntrinsicOp = "load_ubo"
	// srcs: [block, offset]
	IntrLoadSSBO IntrinsicOp = "load_ssbo"
	// srcs: [value, block, offset]
	IntrStoreSSBO IntrinsicOp = "store_ssbo"
	// srcs: [block]
	IntrGetSSBOSize IntrinsicOp = "get_ssbo_size"
	// srcs: [offset]
	IntrLoadShared IntrinsicOp = "load_shared"
	// srcs: [value, offset]
	IntrStoreShared IntrinsicOp = "store_shared"
	// srcs: [member, offset]
	IntrLoadPushConstant IntrinsicOp = "load_push_constant"
	// srcs: [block, offset, data] or [block, offset, data, compare]
	IntrSSBOAtomic IntrinsicOp = "ssbo_atomic"
	// srcs: [offset, data] or [offset, data, compare]
	IntrSharedAtomic IntrinsicOp = "shared_atomic"
)

// Storage images, addressed through an image deref.
const (
	// srcs: [deref, coord, sample]
	IntrImageLoad IntrinsicOp = "image_deref_load"
	// srcs: [deref, coord, sample, texel]
	IntrImageStore IntrinsicOp = "image_deref_store"
	// srcs: [deref]
	IntrImageSize IntrinsicOp = "image_deref_size"
	// srcs: [deref]
	IntrImageSamples IntrinsicOp = "image_deref_samples"
	// srcs: [deref, coord, sample, data] or [..., data, compare]
	IntrImageAtomic IntrinsicOp = "image_deref_atomic"
)

// System values. None take sources.
const (
	IntrLoadFrontFace             IntrinsicOp = "load_front_face"
	IntrLoadBaseInstance          IntrinsicOp = "load_base_instance"
	IntrLoadInstanceID            IntrinsicOp = "load_instance_id"
	IntrLoadBaseVertex            IntrinsicOp = "load_base_vertex"
	IntrLoadDrawID                IntrinsicOp = "load_draw_id"
	IntrLoadVertexID              IntrinsicOp = "load_vertex_id"
	IntrLoadPrimitiveID           IntrinsicOp = "load_primitive_id"
	IntrLoadInvocationID          IntrinsicOp = "load_invocation_id"
	IntrLoadSampleID              IntrinsicOp = "load_sample_id"
	IntrLoadSamplePos             IntrinsicOp = "load_sample_pos"
	IntrLoadSampleMaskIn          IntrinsicOp = "load_sample_mask_in"
	IntrLoadHelperInvocation      IntrinsicOp = "load_helper_invocation"
	IntrLoadPatchVerticesIn       IntrinsicOp = "load_patch_vertices_in"
	IntrLoadTessCoord             IntrinsicOp = "load_tess_coord"
	IntrLoadWorkgroupID           IntrinsicOp = "load_workgroup_id"
	IntrLoadNumWorkgroups         IntrinsicOp = "load_num_workgroups"
	IntrLoadLocalInvocationID     IntrinsicOp = "load_local_invocation_id"
	IntrLoadGlobalInvocationID    IntrinsicOp = "load_global_invocation_id"
	IntrLoadLocalInvocationIndex  IntrinsicOp = "load_local_invocation_index"
	IntrLoadWorkgroupSize         IntrinsicOp = "load_workgroup_size"
	IntrLoadSubgroupID            IntrinsicOp = "load_subgroup_id"
	IntrLoadSubgroupInvocation    IntrinsicOp = "load_subgroup_invocation"
	IntrLoadSubgroupSize          IntrinsicOp = "load_subgroup_size"
	IntrLoadSubgroupEqMask        IntrinsicOp = "load_subgroup_eq_mask"
	IntrLoadSubgroupGeMask        IntrinsicOp = "load_subgroup_ge_mask"
	IntrLoadSubgroupGtMask        IntrinsicOp = "load_subgroup_gt_mask"
	IntrLoadSubgroupLeMask        IntrinsicOp = "load_subgroup_le_mask"
	IntrLoadSubgroupLtMask        IntrinsicOp = "load_subgroup_lt_mask"
)

// Control, synchronization and subgroup operations.
const (
	IntrDiscard                  IntrinsicOp = "discard"
	IntrEmitVertex               IntrinsicOp = "emit_vertex"
	IntrEndPrimitive             IntrinsicOp = "end_primitive"
	IntrMemoryBarrier            IntrinsicOp = "memory_barrier"
	IntrMemoryBarrierTCSPatch    IntrinsicOp = "memory_barrier_tcs_patch"
	IntrMemoryBarrierImage       IntrinsicOp = "memory_barrier_image"
	IntrMemoryBarrierBuffer      IntrinsicOp = "memory_barrier_buffer"
	IntrMemoryBarrierShared      IntrinsicOp = "memory_barrier_shared"
	IntrGroupMemoryBarrier       IntrinsicOp = "group_memory_barrier"
	IntrControlBarrier           IntrinsicOp = "control_barrier"
	IntrBeginInvocationInterlock IntrinsicOp = "begin_invocation_interlock"
	IntrEndInvocationInterlock   IntrinsicOp = "end_invocation_interlock"
	// srcs: none; Scope selects the clock.
	IntrShaderClock IntrinsicOp = "shader_clock"
	// srcs: [value]
	IntrBallot IntrinsicOp = "ballot"
	// srcs: [value]
	IntrReadFirstInvocation IntrinsicOp = "read_first_invocation"
	// srcs: [value, invocation]
	IntrReadInvocation IntrinsicOp = "read_invocation"
	// srcs: [value]
	IntrVoteAll IntrinsicOp = "vote_all"
	IntrVoteAny IntrinsicOp = "vote_any"
	IntrVoteIEq IntrinsicOp = "vote_ieq"
	IntrVoteFEq IntrinsicOp = "vote_feq"
)

// IntrinsicInfo describes the static shape of an intrinsic.
type IntrinsicInfo struct {
	// NumSrcs is the required source count; atomics accept one more
	// for compare-and-swap.
	NumSrcs int
	HasDest bool
}

// Info returns the static shape of op.
func (op IntrinsicOp) Info() (IntrinsicInfo, bool) {
	info, ok := intrinsicInfos[op]
	return info, ok
}

var intrinsicInfos = map[IntrinsicOp]IntrinsicInfo{
	IntrLoadDeref:        {1, true},
	IntrStoreDeref:       {2, false},
	IntrInterpAtCentroid: {1, true},
	IntrInterpAtSample:   {2, true},
	IntrInterpAtOffset:   {2, true},

	IntrLoadUBO:          {2, true},
	IntrLoadSSBO:         {2, true},
	IntrStoreSSBO:        {3, false},
	IntrGetSSBOSize:      {1, true},
	IntrLoadShared:       {1, true},
	IntrStoreShared:      {2, false},
	IntrLoadPushConstant: {2, true},
	IntrSSBOAtomic:       {3, true},
	IntrSharedAtomic:     {2, true},

	IntrImageLoad:    {3, true},
	IntrImageStore:   {4, false},
	IntrImageSize:    {1, true},
	IntrImageSamples: {1, true},
	IntrImageAtomic:  {4, true},

	IntrLoadFrontFace:            {0, true},
	IntrLoadBaseInstance:         {0, true},
	IntrLoadInstanceID:           {0, true},
	IntrLoadBaseVertex:           {0, true},
	IntrLoadDrawID:               {0, true},
	IntrLoadVertexID:             {0, true},
	IntrLoadPrimitiveID:          {0, true},
	IntrLoadInvocationID:         {0, true},
	IntrLoadSampleID:             {0, true},
	IntrLoadSamplePos:            {0, true},
	IntrLoadSampleMaskIn:         {0, true},
	IntrLoadHelperInvocation:     {0, true},
	IntrLoadPatchVerticesIn:      {0, true},
	IntrLoadTessCoord:            {0, true},
	IntrLoadWorkgroupID:          {0, true},
	IntrLoadNumWorkgroups:        {0, true},
	IntrLoadLocalInvocationID:    {0, true},
	IntrLoadGlobalInvocationID:   {0, true},
	IntrLoadLocalInvocationIndex: {0, true},
	IntrLoadWorkgroupSize:        {0, true},
	IntrLoadSubgroupID:           {0, true},
	IntrLoadSubgroupInvocation:   {0, true},
	IntrLoadSubgroupSize:         {0, true},
	IntrLoadSubgroupEqMask:       {0, true},
	IntrLoadSubgroupGeMask:       {0, true},
	IntrLoadSubgroupGtMask:       {0, true},
	IntrLoadSubgroupLeMask:       {0, true},
	IntrLoadSubgroupLtMask:       {0, true},

	IntrDiscard:                  {0, false},
	IntrEmitVertex:               {0, false},
	IntrEndPrimitive:             {0, false},
	IntrMemoryBarrier:            {0, false},
	IntrMemoryBarrierTCSPatch:    {0, false},
	IntrMemoryBarrierImage:       {0, false},
	IntrMemoryBarrierBuffer:      {0, false},
	IntrMemoryBarrierShared:      {0, false},
	IntrGroupMemoryBarrier:       {0, false},
	IntrControlBarrier:           {0, false},
	IntrBeginInvocationInterlock: {0, false},
	IntrEndInvocationInterlock:   {0, false},
	IntrShaderClock:              {0, true},
	IntrBallot:                   {1, true},
	IntrReadFirstInvocation:      {1, true},
	IntrReadInvocation:           {2, true},
	IntrVoteAll:                  {1, true},
	IntrVoteAny:                  {1, true},
	IntrVoteIEq:                  {1, true},
	IntrVoteFEq:                  {1, true},
}

// IsAtomic reports whether op takes an AtomicOp and an optional
// compare operand.
func (op IntrinsicOp) IsAtomic() bool {
	return op == IntrSSBOAtomic || op == IntrSharedAtomic || op == IntrImageAtomic
}
