// Package runner is the harness in front of the solution packages: it
// decodes a JSON input document for a problem number, checks the
// preconditions the solutions themselves assume, invokes the solution and
// hands back a JSON-encodable answer.
//
// Solutions never validate their input; the runner is where malformed input
// turns into a sentinel error instead of a panic or a meaningless answer.
//
// Input documents:
//
//	300   {"nums":[10,9,2,5,3,7,101,18]}
//	758   {"words":["ab","bc"],"s":"aabcd"}
//	823   {"arr":[2,4,5,10]}
//	1676  {"root":[3,5,1,6,2,0,8,null,null,7,4],"nodes":[4,7]}
//	2323  {"jobs":[5,2,4],"workers":[1,7,5]}
//	2406  {"intervals":[[5,10],[6,8],[1,5],[2,3],[1,10]]}
//	2542  {"nums1":[1,3,3,2],"nums2":[2,1,3,4],"k":3}
//	2586  {"words":["are","amy","u"],"left":0,"right":2}
//
// Unknown fields and trailing data are rejected. Values in 823's arr, and in
// 1676's tree and node list, must be distinct. For 1676 nodes are given by
// value; the answer is the value of the common ancestor.
//
// A Runner is immutable after New and safe for concurrent use.
package runner
